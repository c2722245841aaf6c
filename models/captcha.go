package models

// CaptchaImage is one selectable image in a CAPTCHA challenge.
type CaptchaImage struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// Captcha is an immutable CAPTCHA challenge. CorrectIDs holds the image
// ids forming the accepted answer.
type Captcha struct {
	ID         int            `json:"id"`
	Text       string         `json:"text"`
	Images     []CaptchaImage `json:"images"`
	CorrectIDs []int          `json:"correctIds"`
}
