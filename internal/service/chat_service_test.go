package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ai-hrchat-be/internal/model"
	"ai-hrchat-be/pkg/maps"
)

func TestAgentHistoryConversion(t *testing.T) {
	turns := []model.ChatTurn{
		{Role: "hr", Query: "hello", Response: "hi"},
		{Role: "candidate", Query: "where is the office", Response: "Hyderabad"},
	}

	history := agentHistory(turns)
	assert.Len(t, history, 2)
	assert.Equal(t, "hr", history[0].Role)
	assert.Equal(t, "hello", history[0].Query)
	assert.Equal(t, "Hyderabad", history[1].Response)
}

func TestTurnsToDtoCarriesMapData(t *testing.T) {
	now := time.Now()
	mapData := &maps.Result{Type: "address"}
	turns := []model.ChatTurn{
		{Role: "hr", Query: "q", Response: "r", Timestamp: now, MapData: mapData, AudioBase64: "abc"},
	}

	res := turnsToDto(turns)
	assert.Len(t, res, 1)
	assert.Equal(t, now, res[0].Timestamp)
	assert.Same(t, mapData, res[0].MapData)
	assert.Equal(t, "abc", res[0].AudioBase64)
}
