package models

// GenerateRequest asks for Count passwords of the given Policy and Length.
// A zero Length selects the policy default and a zero Count selects three.
type GenerateRequest struct {
	UserID int64  `json:"-"`
	Policy string `json:"policy"`
	Length int    `json:"length,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// GenerateResponse carries freshly generated passwords.
type GenerateResponse struct {
	Passwords []string `json:"passwords"`
}

// PolicyInfo describes one password policy so that transports can render
// hints without hard-coding the bounds.
type PolicyInfo struct {
	Name          string `json:"name"`
	MinLength     int    `json:"min_length"`
	MaxLength     int    `json:"max_length"`
	DefaultLength int    `json:"default_length"`
}
