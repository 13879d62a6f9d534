package postmark

// Config holds Postmark API credentials and the sender identity.
// Tokens are optional so credential-free environments can fall back to a
// local sender; the sender identity fields are always required.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderName           string `env:"SENDER_NAME"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}
