package constant

const (
	RoleHR        = "hr"
	RoleCandidate = "candidate"

	// QueryCorrectionSystemPromptV1 keeps the corrector from doing anything
	// except rewriting the query.
	QueryCorrectionSystemPromptV1 = "You are a typo correction and intent understanding assistant."

	// QueryCorrectionPromptV1 is the user prompt template. Placeholders:
	// audience, known cities, common terms.
	QueryCorrectionPromptV1 = "You are an expert at correcting typos and understanding user intent in queries. " +
		"Based on the conversation history, context (interacting with %s), " +
		"previous and following words, and the full question, correct any spelling, typing, or grammatical errors. " +
		"Infer the most likely intended meaning. The query may relate to Quadrant Technologies locations or nearby amenities. " +
		"Known cities: %s. Common terms: %s. " +
		"Output ONLY the corrected query, nothing else."

	// IntentClassificationSystemPromptV1 pins the classifier to strict JSON.
	IntentClassificationSystemPromptV1 = "You are a JSON-only responder. Output only a valid JSON object with keys: " +
		"is_map (bool), intent (string), city (string or null), nearby_type (string or null), " +
		"origin (string or null), destination (string or null). No extra text."

	// IntentClassificationPromptV1 is the classification prompt template.
	// Placeholders: audience, known cities.
	IntentClassificationPromptV1 = "You are an intent classifier for a chat app focused on Quadrant Technologies locations and document-based queries. " +
		"Analyze the query in the context of interacting with %s. " +
		"Step 1: Determine if the query is map-related ('map') or not ('non_map'). " +
		"Map-related queries involve locations, addresses, nearby amenities, or directions related to 'Quadrant Technologies'. " +
		"Step 2: If map-related, classify the intent into one of: " +
		"'single_location' (ask for specific office address/city), " +
		"'multi_location' (ask for all offices or multiple cities), " +
		"'nearby' (ask for amenities like PGs/restaurants near an office), " +
		"'directions' (ask for step-by-step directions to/from an office), " +
		"'distance' (ask for distance or travel time to/from an office, e.g., 'how far is airport from Quadrant Hyderabad'). " +
		"Extract entities: city (exact match from known: %s), " +
		"nearby_type (e.g., 'ladies pgs', 'gents pgs', 'restaurants', or infer from query like 'hotels', 'cafes'), " +
		"origin (starting point for directions or distance, e.g., Quadrant office address if not specified), " +
		"destination (endpoint for directions or distance, e.g., 'airport'). " +
		"If city is implied (e.g., 'nearby PGs in Hyderabad' or 'how far is airport from Quadrant Hyderabad' implies Quadrant Hyderabad), use it. " +
		"For 'nearby' and 'directions'/'distance' with no explicit origin, use Quadrant office as the source address. " +
		"For queries containing 'how far' or 'distance', classify as 'distance' intent. " +
		"Output ONLY a valid JSON object. Examples: " +
		`{"is_map": true, "intent": "single_location", "city": "Bengaluru, Karnataka", "nearby_type": null, "origin": null, "destination": null} ` +
		`or {"is_map": true, "intent": "distance", "city": "Hyderabad, Telangana", "nearby_type": null, "origin": null, "destination": "airport"} ` +
		`or {"is_map": false, "intent": "non_map", "city": null, "nearby_type": null, "origin": null, "destination": null}`

	// DocumentAnswerSystemPromptV1 frames the RAG document answerer.
	DocumentAnswerSystemPromptV1 = "You are a helpful assistant for analyzing documents with context retention."

	// DocumentAnswerPromptV1 is the document answer template. Placeholder:
	// audience description.
	DocumentAnswerPromptV1 = "You are an expert assistant analyzing job descriptions and resumes, designed to maintain conversation context like a chat application. " +
		"You are interacting with a %s. " +
		"Below is the extracted text from relevant document sections and the conversation history. " +
		"Answer the user's query based on the document content and prior conversation. " +
		"Provide a concise and accurate response. If the query cannot be answered based on the provided text or history, say so clearly. " +
		"Support follow-up questions and topic switches while maintaining context."

	// MapAnswerSystemPromptV1 frames the location narration answers.
	MapAnswerSystemPromptV1 = "You are a helpful assistant for providing location-based information."

	// DistanceAnswerPromptV1 narrates a distance result. Placeholders:
	// audience, origin, destination, distance, duration, query.
	DistanceAnswerPromptV1 = "You are an expert assistant providing location-based information for a job candidate or HR representative. " +
		"You are interacting with a %s. " +
		"Using the provided map data, generate a concise natural language response to the query. " +
		"Include the origin, destination, distance, and estimated travel time in a friendly format. " +
		"Do not include map links, as the UI will handle them. " +
		"\n\nMap Data:\nOrigin: %s\nDestination: %s\nDistance: %s\nDuration: %s\n\nQuery: %s"

	// NoDocumentsResponse is returned for document questions before any
	// upload has happened.
	NoDocumentsResponse = "No documents available to answer your query. Please upload relevant documents or ask a location-based question."
)

// SuggestedCandidateQuestions is appended to document prompts when the
// audience is a candidate, steering the model toward useful follow-ups.
var SuggestedCandidateQuestions = []string{
	"What is the salary range for this position?",
	"What are the next steps in the interview process?",
	"Can you tell me more about the team I'll be working with?",
	"What benefits does the company offer?",
	"What is the expected start date?",
	"What is the address of Quadrant Technologies?",
	"Are there any PGs or restaurants near Quadrant Technologies?",
	"Where are all the Quadrant Technologies offices located?",
}

// CommonQueryTerms are domain words the local corrector snaps typos onto.
var CommonQueryTerms = []string{
	"restaurants", "restaurant", "pgs", "pg", "nearby", "near", "address", "locations", "offices",
}
