package auth

type LoginInput struct {
	Code string
}

type LoginOutput struct {
	SessionID   string
	AccessToken string
}
