package questionbank

import (
	"gorm.io/datatypes"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

func strPtr(s string) *string { return &s }

// definitions returns the canonical question set: six modules, 21
// questions, 100 points. Questions 4, 8, 16 and 20 are safety-related.
// Content is written for hotel division crew; other divisions reuse the
// same set until division-specific banks ship.
func definitions() []models.Question {
	return []models.Question{
		// ===== LISTENING (4 x 4 pts) =====
		{
			ID:           1,
			Module:       models.ModuleListening,
			Type:         models.QuestionMultipleChoice,
			Division:     models.DivisionHotel,
			QuestionText: "Listen to the announcement. What time is the dinner reservation?",
			AudioText:    strPtr("Good evening. This is a reminder that your dinner reservation at the main restaurant is confirmed for seven PM this evening."),
			Options:      datatypes.JSONSlice[string]{"6 PM", "7 PM", "8 PM", "9 PM"},
			CorrectAnswer: strPtr("7 PM"),
			Points:        4,
		},
		{
			ID:           2,
			Module:       models.ModuleListening,
			Type:         models.QuestionMultipleChoice,
			Division:     models.DivisionHotel,
			QuestionText: "Listen to the guest request. Which room number does the guest mention?",
			AudioText:    strPtr("Hello, this is room eight two five four. Could we get two extra towels delivered, please?"),
			Options:      datatypes.JSONSlice[string]{"8245", "8254", "8524", "2854"},
			CorrectAnswer: strPtr("8254"),
			Points:        4,
		},
		{
			ID:           3,
			Module:       models.ModuleListening,
			Type:         models.QuestionMultipleChoice,
			Division:     models.DivisionHotel,
			QuestionText: "Listen to the announcement. On which deck is the buffet located?",
			AudioText:    strPtr("Ladies and gentlemen, the lunch buffet is now open on deck twelve, at the Lido restaurant."),
			Options:      datatypes.JSONSlice[string]{"Deck 10", "Deck 11", "Deck 12", "Deck 14"},
			CorrectAnswer: strPtr("Deck 12"),
			Points:        4,
		},
		{
			ID:              4,
			Module:          models.ModuleListening,
			Type:            models.QuestionMultipleChoice,
			Division:        models.DivisionHotel,
			QuestionText:    "Listen to the safety announcement. Where should guests from this cabin section assemble?",
			AudioText:       strPtr("In the event of an emergency, guests in cabin sections seven and eight must proceed to Muster Station B on deck four."),
			Options:         datatypes.JSONSlice[string]{"Muster Station A", "Muster Station B", "Muster Station C", "Muster Station D"},
			CorrectAnswer:   strPtr("Muster Station B"),
			Points:          4,
			IsSafetyRelated: true,
		},

		// ===== TIME & NUMBERS (4 x 4 pts) =====
		{
			ID:            5,
			Module:        models.ModuleTimeNumbers,
			Type:          models.QuestionFillBlank,
			Division:      models.DivisionHotel,
			QuestionText:  "The spa opens at seven o'clock in the morning. Write the opening time.",
			CorrectAnswer: strPtr("7:00"),
			Points:        4,
		},
		{
			ID:            6,
			Module:        models.ModuleTimeNumbers,
			Type:          models.QuestionFillBlank,
			Division:      models.DivisionHotel,
			QuestionText:  "A table is booked for eight guests. Write the number of guests.",
			CorrectAnswer: strPtr("8"),
			Points:        4,
		},
		{
			ID:            7,
			Module:        models.ModuleTimeNumbers,
			Type:          models.QuestionFillBlank,
			Division:      models.DivisionHotel,
			QuestionText:  "The guest's folio number is nine one seven three. Write the folio number.",
			CorrectAnswer: strPtr("9173"),
			Points:        4,
		},
		{
			ID:              8,
			Module:          models.ModuleTimeNumbers,
			Type:            models.QuestionFillBlank,
			Division:        models.DivisionHotel,
			QuestionText:    "Each lifeboat holds one hundred fifty persons. Write the lifeboat capacity.",
			CorrectAnswer:   strPtr("150"),
			Points:          4,
			IsSafetyRelated: true,
		},

		// ===== GRAMMAR (4 x 4 pts) =====
		{
			ID:            9,
			Module:        models.ModuleGrammar,
			Type:          models.QuestionMultipleChoice,
			Division:      models.DivisionHotel,
			QuestionText:  "Choose the correct word: \"___ I help you with your luggage?\"",
			Options:       datatypes.JSONSlice[string]{"May", "Do", "Am", "Will"},
			CorrectAnswer: strPtr("May"),
			Points:        4,
		},
		{
			ID:            10,
			Module:        models.ModuleGrammar,
			Type:          models.QuestionMultipleChoice,
			Division:      models.DivisionHotel,
			QuestionText:  "Choose the correct word: \"The restaurant ___ a dress code for dinner.\"",
			Options:       datatypes.JSONSlice[string]{"have", "has", "having", "is have"},
			CorrectAnswer: strPtr("has"),
			Points:        4,
		},
		{
			ID:            11,
			Module:        models.ModuleGrammar,
			Type:          models.QuestionMultipleChoice,
			Division:      models.DivisionHotel,
			QuestionText:  "Choose the correct word: \"I will ___ you to the guest services desk.\"",
			Options:       datatypes.JSONSlice[string]{"direct", "directed", "directing", "directs"},
			CorrectAnswer: strPtr("direct"),
			Points:        4,
		},
		{
			ID:            12,
			Module:        models.ModuleGrammar,
			Type:          models.QuestionMultipleChoice,
			Division:      models.DivisionHotel,
			QuestionText:  "Choose the correct word: \"Breakfast is served ___ deck twelve.\"",
			Options:       datatypes.JSONSlice[string]{"in", "at", "on", "by"},
			CorrectAnswer: strPtr("on"),
			Points:        4,
		},

		// ===== VOCABULARY (4 x 4 pts, four pairs each) =====
		{
			ID:           13,
			Module:       models.ModuleVocabulary,
			Type:         models.QuestionVocabularyMatch,
			Division:     models.DivisionHotel,
			QuestionText: "Match each ship term to its meaning.",
			CorrectMatches: datatypes.NewJSONType(map[string]string{
				"bow":       "front of the ship",
				"stern":     "back of the ship",
				"port":      "left side of the ship",
				"starboard": "right side of the ship",
			}),
			Points: 4,
		},
		{
			ID:           14,
			Module:       models.ModuleVocabulary,
			Type:         models.QuestionVocabularyMatch,
			Division:     models.DivisionHotel,
			QuestionText: "Match each hotel term to its meaning.",
			CorrectMatches: datatypes.NewJSONType(map[string]string{
				"amenities":   "extra comforts provided for guests",
				"concierge":   "staff member who assists guests with requests",
				"housekeeping": "department that cleans cabins",
				"turndown":    "evening service preparing the bed",
			}),
			Points: 4,
		},
		{
			ID:           15,
			Module:       models.ModuleVocabulary,
			Type:         models.QuestionVocabularyMatch,
			Division:     models.DivisionHotel,
			QuestionText: "Match each dining term to its meaning.",
			CorrectMatches: datatypes.NewJSONType(map[string]string{
				"galley":      "ship kitchen",
				"buffet":      "self-service meal",
				"a la carte":  "dishes ordered individually from a menu",
				"sommelier":   "wine expert",
			}),
			Points: 4,
		},
		{
			ID:           16,
			Module:       models.ModuleVocabulary,
			Type:         models.QuestionVocabularyMatch,
			Division:     models.DivisionHotel,
			QuestionText: "Match each safety term to its meaning.",
			CorrectMatches: datatypes.NewJSONType(map[string]string{
				"muster station": "emergency assembly point",
				"life jacket":    "personal flotation device",
				"drill":          "practice of emergency procedures",
				"all clear":      "signal that the emergency is over",
			}),
			Points:          4,
			IsSafetyRelated: true,
		},

		// ===== READING (4 x 4 pts) =====
		{
			ID:           17,
			Module:       models.ModuleReading,
			Type:         models.QuestionMultipleChoice,
			Division:     models.DivisionHotel,
			QuestionText: "According to the notice, when does the pool close?",
			Passage:      strPtr("POOL NOTICE: The main pool is open daily from 8:00 AM to 10:00 PM. Towels are available at the pool station. Children under 12 must be accompanied by an adult."),
			Options:      datatypes.JSONSlice[string]{"8:00 PM", "9:00 PM", "10:00 PM", "11:00 PM"},
			CorrectAnswer: strPtr("10:00 PM"),
			Points:        4,
		},
		{
			ID:           18,
			Module:       models.ModuleReading,
			Type:         models.QuestionMultipleChoice,
			Division:     models.DivisionHotel,
			QuestionText: "According to the memo, what must crew members do before their shift?",
			Passage:      strPtr("CREW MEMO: All food service crew must sanitize their hands and sign the hygiene log before starting each shift. Uniforms must be clean and name badges visible."),
			Options:      datatypes.JSONSlice[string]{"Attend a meeting", "Sign the hygiene log", "Collect new uniforms", "Report to the bridge"},
			CorrectAnswer: strPtr("Sign the hygiene log"),
			Points:        4,
		},
		{
			ID:           19,
			Module:       models.ModuleReading,
			Type:         models.QuestionMultipleChoice,
			Division:     models.DivisionHotel,
			QuestionText: "According to the schedule, where is the welcome reception held?",
			Passage:      strPtr("DAILY PROGRAM: 5:00 PM Welcome reception, Grand Atrium, deck 5. 7:00 PM First dinner seating, main restaurant. 9:00 PM Evening show, theater, deck 6."),
			Options:      datatypes.JSONSlice[string]{"Main restaurant", "Theater", "Grand Atrium", "Lido deck"},
			CorrectAnswer: strPtr("Grand Atrium"),
			Points:        4,
		},
		{
			ID:           20,
			Module:       models.ModuleReading,
			Type:         models.QuestionMultipleChoice,
			Division:     models.DivisionHotel,
			QuestionText: "According to the notice, what time does the muster drill begin?",
			Passage:      strPtr("SAFETY NOTICE: A mandatory muster drill for all guests and crew will be held today at 4:00 PM. Proceed to your assigned muster station when the general alarm sounds. Attendance is recorded."),
			Options:      datatypes.JSONSlice[string]{"3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM"},
			CorrectAnswer: strPtr("4:00 PM"),
			Points:          4,
			IsSafetyRelated: true,
		},

		// ===== SPEAKING (1 x 20 pts) =====
		{
			ID:           21,
			Module:       models.ModuleSpeaking,
			Type:         models.QuestionSpeaking,
			Division:     models.DivisionHotel,
			QuestionText: "A guest says their cabin air conditioning is too cold. Record your spoken response to the guest.",
			ExpectedKeywords: datatypes.JSONSlice[string]{
				"apologize", "sorry", "send someone", "fix", "adjust", "maintenance", "comfortable",
			},
			MinDurationSeconds: 10,
			Points:             20,
		},
	}
}
