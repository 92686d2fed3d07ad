package common

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	// Loads .env before the environment is read.
	_ "github.com/joho/godotenv/autoload"
	"google.golang.org/api/option"
)

var (
	CtxKeys struct {
		UID    string
		Email  string
		Name   string
		Claims string
	}

	ProjectID string

	// AppURL is the public URL of the web app, used for checkout and portal redirects.
	AppURL string

	Service string

	Version string

	Env string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	defaultAppURL = "http://localhost:3000"

	productionEnv = "production"

	TestProjectID = "gettupp-os-test"
)

// Firestore collections
const (
	LeadsCollection         = "leads"
	ClientsCollection       = "clients"
	ShootsCollection        = "shoots"
	InvoicesCollection      = "invoices"
	PaymentsCollection      = "payments"
	SubscriptionsCollection = "subscriptions"
	DisputesCollection      = "disputes"
	StripeEventsCollection  = "stripe_events"
	KnowledgeCollection     = "knowledge_base"
	SiteContentCollection   = "site_content"
)

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", GetEnv("FIREBASE_ADMIN_PROJECT_ID", ""))
	if ProjectID == "" {
		log.Println("environment variable GOOGLE_CLOUD_PROJECT is not set, using test project")

		ProjectID = TestProjectID
	}

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Service = GetEnv("K_SERVICE", "gettupp-os")
	Version = GetEnv("K_REVISION", "localhost")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	AppURL = strings.TrimSuffix(GetEnv("NEXT_PUBLIC_APP_URL", GetEnv("APP_URL", defaultAppURL)), "/")

	Env = GetEnv("APP_ENV", "development")
	Production = Env == productionEnv
}

func init() {
	initEnvVariables()

	CtxKeys.UID = "uid"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"
	CtxKeys.Claims = "claims"
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// ClientOptions returns the credential options for google clients.
// Service account credentials are built from the FIREBASE_ADMIN_* variables when
// present; otherwise application default credentials are used.
func ClientOptions() []option.ClientOption {
	email := os.Getenv("FIREBASE_ADMIN_CLIENT_EMAIL")
	key := os.Getenv("FIREBASE_ADMIN_PRIVATE_KEY")

	if email == "" || key == "" {
		return nil
	}

	data, err := json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   ProjectID,
		ClientEmail: email,
		PrivateKey:  NormalizePrivateKey(key),
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		log.Printf("could not build service account credentials: %s", err)
		return nil
	}

	return []option.ClientOption{option.WithCredentialsJSON(data)}
}

// NormalizePrivateKey converts escaped newlines, as stored in env files, into real ones.
func NormalizePrivateKey(key string) string {
	key = strings.Trim(key, `"`)
	return strings.ReplaceAll(key, `\n`, "\n")
}

func String(v string) *string {
	return &v
}

func Int(v int) *int {
	return &v
}

func Float(v float64) *float64 {
	return &v
}
