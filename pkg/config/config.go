package config

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jhoicas/hareware-api/pkg/cnpj"
)

// ControlPlaneSelector selector reservado para la base central (usuarios, empresas, contratos).
const ControlPlaneSelector = "hareware"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	Tenants   TenantTable
	JWT       JWTConfig
	HTTP      HTTPConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Join      JoinConfig
	OpenAI    OpenAIConfig
	Storage   StorageConfig
	Jobs      JobsConfig
	CNPJ      CNPJConfig
	Access    AccessConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	LogLevel       string
	MigrateOnStart bool
}

// DBConfig configuración de PostgreSQL de la base central.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// TenantTable tabla estática selector → connection string.
// Incluye siempre la base central bajo ControlPlaneSelector.
type TenantTable map[string]string

// Lookup devuelve el DSN del selector.
func (t TenantTable) Lookup(selector string) (string, bool) {
	dsn, ok := t[selector]
	return dsn, ok
}

// Selectors devuelve los selectores ordenados.
func (t TenantTable) Selectors() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParseTenantTable interpreta "sel=dsn;sel2=dsn2". Entradas vacías se ignoran.
// Los selectores de tenant se guardan como CNPJ normalizado (solo dígitos).
func ParseTenantTable(raw string) (TenantTable, error) {
	table := TenantTable{}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		sel, dsn, ok := strings.Cut(entry, "=")
		sel = strings.TrimSpace(sel)
		dsn = strings.TrimSpace(dsn)
		if sel != ControlPlaneSelector {
			sel = cnpj.Normalize(sel)
		}
		if !ok || sel == "" || dsn == "" {
			return nil, fmt.Errorf("TENANT_DATABASES: entrada inválida %q", entry)
		}
		if _, dup := table[sel]; dup {
			return nil, fmt.Errorf("TENANT_DATABASES: selector repetido %q", sel)
		}
		table[sel] = dsn
	}
	return table, nil
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

// RedisConfig conexión a Redis. Addr vacío desactiva el limitador de login.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// RateLimitConfig límite de intentos de login por ventana fija.
type RateLimitConfig struct {
	LoginLimit  int
	LoginWindow time.Duration
}

// JoinConfig gateway de WhatsApp (Join Developer).
type JoinConfig struct {
	BaseURL     string
	ClientToken string
	WebhookURL  string
	Timeout     time.Duration
}

// OpenAIConfig asistente. La API key vive en la tabla de credenciales bajo CredentialID.
type OpenAIConfig struct {
	BaseURL      string
	CredentialID string
	Timeout      time.Duration
	PollInterval time.Duration
}

// StorageConfig almacenamiento de objetos (Supabase Storage).
type StorageConfig struct {
	URL    string
	Key    string
	Bucket string
}

// Enabled indica si hay storage configurado.
func (c StorageConfig) Enabled() bool { return c.URL != "" && c.Key != "" }

// JobsConfig tareas programadas.
type JobsConfig struct {
	ContractExpirationCron string
}

// CNPJConfig CNPJ ficticios aceptados sin dígito verificador (ambientes de prueba).
type CNPJConfig struct {
	Sandbox []string
}

// AccessConfig nivel mínimo para administrar empresas, contratos y credenciales.
type AccessConfig struct {
	AdminLevel int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "hareware-api"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			MigrateOnStart: getBool(v, "MIGRATE_ON_START", false),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "hareware"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "hareware-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			LoginLimit:  getInt(v, "LOGIN_RATE_LIMIT", 10),
			LoginWindow: time.Duration(getInt(v, "LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Join: JoinConfig{
			BaseURL:     getString(v, "JOIN_API_URL", "https://api-prd.joindeveloper.com.br"),
			ClientToken: getString(v, "JOIN_TOKEN_CLIENTE", ""),
			WebhookURL:  getString(v, "JOIN_WEBHOOK_URL", ""),
			Timeout:     time.Duration(getInt(v, "JOIN_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		OpenAI: OpenAIConfig{
			BaseURL:      getString(v, "OPENAI_API_URL", "https://api.openai.com/v1"),
			CredentialID: getString(v, "OPENAI_CREDENTIAL_ID", "openaiHW"),
			Timeout:      time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 60)) * time.Second,
			PollInterval: time.Duration(getInt(v, "AI_POLL_INTERVAL_MS", 1000)) * time.Millisecond,
		},
		Storage: StorageConfig{
			URL:    getString(v, "SUPABASE_URL", ""),
			Key:    getString(v, "SUPABASE_KEY", ""),
			Bucket: getString(v, "SUPABASE_BUCKET", "imagens"),
		},
		Jobs: JobsConfig{
			ContractExpirationCron: getString(v, "CONTRACT_EXPIRATION_CRON", "5 0 * * *"),
		},
		CNPJ: CNPJConfig{
			Sandbox: splitList(getString(v, "CNPJ_SANDBOX", "12345678000190")),
		},
		Access: AccessConfig{
			AdminLevel: getInt(v, "ADMIN_ACCESS_LEVEL", 3),
		},
	}

	tenants, err := ParseTenantTable(getString(v, "TENANT_DATABASES", ""))
	if err != nil {
		return nil, err
	}
	if _, clash := tenants[ControlPlaneSelector]; clash {
		return nil, fmt.Errorf("TENANT_DATABASES: el selector %q está reservado", ControlPlaneSelector)
	}
	tenants[ControlPlaneSelector] = cfg.DB.ConnectionString()
	cfg.Tenants = tenants

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
