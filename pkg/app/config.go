package app

import "fmt"

// AppConfig contains the HTTP listener configuration
type AppConfig struct {
	Host string `env:"APP_HOST" env-default:"localhost"`
	Port uint16 `env:"APP_PORT" env-default:"3000"`
}

// Addr returns the host:port listen address
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// DbConfig contains the Postgres connection configuration
type DbConfig struct {
	Host     string `env:"TASKTITAN_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"TASKTITAN_PG_PORT" env-default:"5432"`
	Database string `env:"TASKTITAN_PG_DATABASE" env-default:"tasktitan_db"`
	User     string `env:"TASKTITAN_PG_USER" env-default:"tasktitan"`
	Password string `env:"TASKTITAN_PG_PASSWORD" env-default:"pwd"`
}

// ToDatabaseURL returns the pgx connection string
func (d DbConfig) ToDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

// JwtConfig contains the token signing configuration. The secret is
// process-wide and read-only after startup.
type JwtConfig struct {
	Secret            string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	Issuer            string `env:"JWT_ISSUER" env-default:"tasktitan"`
	Audience          string `env:"JWT_AUDIENCE" env-default:"tasktitan"`
	AccessTokenExpiry string `env:"ACCESS_TOKEN_EXPIRY" env-default:"1h"`
}

// PasswordConfig tunes the password hashing cost
type PasswordConfig struct {
	BcryptCost int `env:"BCRYPT_COST" env-default:"12"`
}

// Config is the full environment-supplied configuration
type Config struct {
	App      AppConfig
	Db       DbConfig
	Jwt      JwtConfig
	Password PasswordConfig
}
