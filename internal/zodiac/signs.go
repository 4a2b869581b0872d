package zodiac

var signs = map[Sign]Info{
	Aries: {
		Symbol:     "♈",
		Element:    Fire,
		Quality:    Cardinal,
		Ruler:      "Mars",
		Strengths:  []string{"Courageous", "Energetic", "Pioneering"},
		Challenges: []string{"Impatient", "Impulsive", "Aggressive"},
	},
	Taurus: {
		Symbol:     "♉",
		Element:    Earth,
		Quality:    Fixed,
		Ruler:      "Venus",
		Strengths:  []string{"Reliable", "Patient", "Practical"},
		Challenges: []string{"Stubborn", "Possessive", "Resistant to change"},
	},
	Gemini: {
		Symbol:     "♊",
		Element:    Air,
		Quality:    Mutable,
		Ruler:      "Mercury",
		Strengths:  []string{"Adaptable", "Curious", "Communicative"},
		Challenges: []string{"Inconsistent", "Indecisive", "Nervous"},
	},
	Cancer: {
		Symbol:     "♋",
		Element:    Water,
		Quality:    Cardinal,
		Ruler:      "Moon",
		Strengths:  []string{"Nurturing", "Intuitive", "Protective"},
		Challenges: []string{"Moody", "Oversensitive", "Clingy"},
	},
	Leo: {
		Symbol:     "♌",
		Element:    Fire,
		Quality:    Fixed,
		Ruler:      "Sun",
		Strengths:  []string{"Confident", "Generous", "Creative"},
		Challenges: []string{"Arrogant", "Dominating", "Stubborn"},
	},
	Virgo: {
		Symbol:     "♍",
		Element:    Earth,
		Quality:    Mutable,
		Ruler:      "Mercury",
		Strengths:  []string{"Analytical", "Practical", "Helpful"},
		Challenges: []string{"Overcritical", "Perfectionist", "Worrier"},
	},
	Libra: {
		Symbol:     "♎",
		Element:    Air,
		Quality:    Cardinal,
		Ruler:      "Venus",
		Strengths:  []string{"Diplomatic", "Fair", "Social"},
		Challenges: []string{"Indecisive", "Avoids confrontation", "Self-pitying"},
	},
	Scorpio: {
		Symbol:     "♏",
		Element:    Water,
		Quality:    Fixed,
		Ruler:      "Pluto",
		Strengths:  []string{"Passionate", "Resourceful", "Determined"},
		Challenges: []string{"Jealous", "Secretive", "Resentful"},
	},
	Sagittarius: {
		Symbol:     "♐",
		Element:    Fire,
		Quality:    Mutable,
		Ruler:      "Jupiter",
		Strengths:  []string{"Optimistic", "Adventurous", "Philosophical"},
		Challenges: []string{"Tactless", "Restless", "Overconfident"},
	},
	Capricorn: {
		Symbol:     "♑",
		Element:    Earth,
		Quality:    Cardinal,
		Ruler:      "Saturn",
		Strengths:  []string{"Disciplined", "Responsible", "Ambitious"},
		Challenges: []string{"Pessimistic", "Stubborn", "Unforgiving"},
	},
	Aquarius: {
		Symbol:     "♒",
		Element:    Air,
		Quality:    Fixed,
		Ruler:      "Uranus",
		Strengths:  []string{"Progressive", "Independent", "Humanitarian"},
		Challenges: []string{"Detached", "Rebellious", "Unpredictable"},
	},
	Pisces: {
		Symbol:     "♓",
		Element:    Water,
		Quality:    Mutable,
		Ruler:      "Neptune",
		Strengths:  []string{"Compassionate", "Artistic", "Intuitive"},
		Challenges: []string{"Overly trusting", "Escapist", "Vague"},
	},
}
