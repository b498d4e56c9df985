package mailer

// Config holds SMTP settings for report delivery.
type Config struct {
	// Host is the SMTP server hostname. Empty disables mail delivery.
	Host string `mapstructure:"host" default:""`
	// Port is the SMTP server port.
	Port int `mapstructure:"port" default:"465"`
	// Username authenticates against the SMTP server.
	Username string `mapstructure:"username" default:""`
	// Password authenticates against the SMTP server.
	Password string `mapstructure:"password" default:""`
	// From is the sender address. Falls back to Username when empty.
	From string `mapstructure:"from" default:""`
	// To is the recipient of import reports. Empty disables mail delivery.
	To string `mapstructure:"to" default:""`
	// DialTimeoutSeconds bounds the connection attempt.
	DialTimeoutSeconds int `mapstructure:"dial_timeout_seconds" default:"10"`
}

// Enabled reports whether the configuration is complete enough to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.To != ""
}
