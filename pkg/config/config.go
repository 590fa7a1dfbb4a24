package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	AWS    AWSConfig
	Dynamo DynamoConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Seller SellerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// AWSConfig credenciales y región para el SDK de AWS.
// Si Endpoint no está vacío se usa como endpoint del servicio (DynamoDB Local
// en desarrollo). Credenciales vacías delegan en la cadena por defecto del SDK
// (perfil, variables de entorno, rol IAM).
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// DynamoConfig nombres de tabla de DynamoDB.
type DynamoConfig struct {
	TablePrefix string // ej. "dev_" para ambientes compartidos
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SellerConfig datos del emisor que aparecen en el PDF de factura.
type SellerConfig struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, AWS_REGION, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "almacen"),
		},
		AWS: AWSConfig{
			Region:          getString(v, "AWS_REGION", "us-east-1"),
			AccessKeyID:     getString(v, "AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getString(v, "AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getString(v, "AWS_DYNAMO_ENDPOINT", ""),
		},
		Dynamo: DynamoConfig{
			TablePrefix: getString(v, "DYNAMO_TABLE_PREFIX", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "almacen"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Seller: SellerConfig{
			Name:    getString(v, "SELLER_NAME", ""),
			TaxID:   getString(v, "SELLER_TAX_ID", ""),
			Address: getString(v, "SELLER_ADDRESS", ""),
			Phone:   getString(v, "SELLER_PHONE", ""),
			Email:   getString(v, "SELLER_EMAIL", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
