package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") || !contains(output, "abcd1234") || !contains(output, "2026-08-29") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.AppHost, cfg.AppPort, cfg.LogLevel)
	}

	// PostgreSQL
	if cfg.PGHost != "localhost" || cfg.PGPort != 5432 || cfg.PGUser != "user" || cfg.PGPassword != "password" || cfg.PGDB != "database" ||
		cfg.PGMaxOpenConns != 16 || cfg.PGMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" ||
		cfg.RedisPoolSize != 10 || cfg.RedisMinIdleConns != 2 || cfg.CacheTTLSecond != 30 {
		t.Errorf("unexpected redis config")
	}

	// Kafka
	if cfg.KafkaBrokers != "localhost:9092" || cfg.KafkaTopic != "swap-events" {
		t.Errorf("unexpected kafka config")
	}

	// Escrow
	if cfg.EscrowBaseURL != "http://localhost:8090" || cfg.EscrowTimeoutSecond != 10 {
		t.Errorf("unexpected escrow config")
	}

	// JWT
	if cfg.JWTSecretKey != "my_super_secret_key" || cfg.JWTExpSecond != 3600 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "stayswap")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("CACHE_TTL_SECOND", "120")

	os.Setenv("KAFKA_BROKERS", "kafka.example.com:9092")
	os.Setenv("KAFKA_SWAP_EVENTS_TOPIC", "swap-lifecycle")

	os.Setenv("ESCROW_BASE_URL", "http://escrow.example.com")
	os.Setenv("ESCROW_TIMEOUT_SECOND", "5")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.PGHost != "pg.example.com" || cfg.PGPort != 5433 || cfg.PGUser != "admin" || cfg.PGPassword != "secret" || cfg.PGDB != "stayswap" ||
		cfg.PGMaxOpenConns != 20 || cfg.PGMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.RedisHost != "redis.example.com" || cfg.RedisPort != 6380 || cfg.RedisDB != 2 || cfg.RedisPassword != "redispass" ||
		cfg.RedisPoolSize != 15 || cfg.RedisMinIdleConns != 5 || cfg.CacheTTLSecond != 120 {
		t.Errorf("unexpected redis config")
	}
	if cfg.KafkaBrokers != "kafka.example.com:9092" || cfg.KafkaTopic != "swap-lifecycle" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.EscrowBaseURL != "http://escrow.example.com" || cfg.EscrowTimeoutSecond != 5 {
		t.Errorf("unexpected escrow config")
	}
	if cfg.JWTSecretKey != "supersecret" || cfg.JWTExpSecond != 300 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Mock escrow server ------------------
	escrow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer escrow.Close()

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := &config{
		AppHost: "127.0.0.1", AppPort: "8086", LogLevel: "debug",
		PGHost: pgHost, PGPort: pgPort.Int(), PGUser: "user", PGPassword: "password", PGDB: "testdb",
		PGMaxOpenConns: 5, PGMaxIdleConns: 2,
		RedisHost: redisHost, RedisPort: redisPort.Int(), RedisDB: 0, RedisPassword: "",
		RedisPoolSize: 10, RedisMinIdleConns: 2, CacheTTLSecond: 30,
		KafkaBrokers: "localhost:9092", KafkaTopic: "swap-events",
		EscrowBaseURL: escrow.URL, EscrowTimeoutSecond: 5,
		JWTSecretKey: "testsecret", JWTExpSecond: 60,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
