package model

// CrisisRisk is the remote classifier's assessment of self-harm risk in the
// submitted text. RiskLevel is one of LOW, MEDIUM, HIGH or IMMINENT;
// Confidence is in [0,1]. Both are displayed verbatim, the client performs
// no classification of its own.
type CrisisRisk struct {
	RiskLevel  string  `json:"risk_level"`
	Confidence float64 `json:"confidence"`
}

// Hotline is a single crisis support contact.
type Hotline struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Hotlines groups the contacts the server selected for the user's locale.
// The suicide prevention line is rendered above the other two.
type Hotlines struct {
	SuicidePrevention *Hotline `json:"suicide_prevention"`
	Emergency         *Hotline `json:"emergency"`
	MentalHealth      *Hotline `json:"mental_health"`
}

// CrisisResources carries the hotlines shown in the crisis banner.
type CrisisResources struct {
	Country  string   `json:"country"`
	Hotlines Hotlines `json:"hotlines"`
}
