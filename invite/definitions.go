package invite

// DefaultRegistry returns a registry populated with the built-in
// invitation templates. Field order drives wizard progression.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, def := range builtinDefinitions() {
		if err := registry.Register(def); err != nil {
			panic(err)
		}
	}
	return registry
}

func builtinDefinitions() []TemplateDefinition {
	return []TemplateDefinition{
		{
			ID:       "birthday",
			Title:    "Birthday Template",
			Category: "Personalize",
			Code:     "BDAY",
			Builder:  BirthdayBuilder{},
			Fields: []FieldSpec{
				{
					Name:        "name",
					Kind:        FieldShortText,
					Label:       "Who are we celebrating?",
					Help:        "Enter the recipient's name as it should appear on the card.",
					Placeholder: "Recipient's Name",
				},
				{
					Name:        "message",
					Kind:        FieldLongText,
					Label:       "Write a heartfelt message",
					Help:        "Choose your words carefully for their special day.",
					Placeholder: "Your birthday message...",
				},
				{
					Name:  "image",
					Kind:  FieldImage,
					Label: "Add a special photo",
					Help:  "A picture is worth a thousand heartbeats.",
				},
			},
		},
		{
			ID:       "kwibuka",
			Title:    "Kwibuka Template",
			Category: "Commemorate",
			Code:     "KWBK",
			Builder:  KwibukaBuilder{},
			Fields: []FieldSpec{
				{
					Name:        "years",
					Kind:        FieldInteger,
					Label:       "What is the number of years?",
					Help:        "Which year of commemoration is this? (e.g., 31)",
					Placeholder: "Enter number (e.g., 31)",
				},
				{
					Name:        "date",
					Kind:        FieldShortText,
					Label:       "Date of commemoration",
					Help:        "Enter the date for the event (e.g., 5 May 2026).",
					Placeholder: "e.g., 5 May 2026",
				},
				{
					Name:        "venue",
					Kind:        FieldShortText,
					Label:       "Where is the venue?",
					Help:        "Enter the venue or memorial site address.",
					Placeholder: "e.g., Nyabihu Genocide Memorial Site",
				},
				{
					Name:        "messageOfHope",
					Kind:        FieldLongText,
					Label:       "Message of Hope",
					Help:        "Enter a brief message to be displayed at the bottom.",
					Placeholder: "Your message of hope...",
				},
			},
		},
		{
			ID:       "event",
			Title:    "Event Template",
			Category: "Celebrate",
			Code:     "EVNT",
			Builder:  EventBuilder{},
			Fields: []FieldSpec{
				{
					Name:        "eventDate",
					Kind:        FieldShortText,
					Label:       "What is the date of the event?",
					Help:        "Enter the date of the celebration (e.g. 12th June 2026).",
					Placeholder: "Event Date",
				},
				{
					Name:        "eventDay",
					Kind:        FieldShortText,
					Label:       "What day is the event?",
					Help:        "Enter the day of the week (e.g. Friday).",
					Placeholder: "Event Day",
				},
				{
					Name:        "hostingFamily",
					Kind:        FieldShortText,
					Label:       "The hosting family",
					Help:        "Who is hosting this special event?",
					Placeholder: "Family name or host",
				},
				{
					Name:        "location",
					Kind:        FieldShortText,
					Label:       "Where is the event?",
					Help:        "Enter the location or venue address.",
					Placeholder: "Event Location",
				},
			},
		},
	}
}
