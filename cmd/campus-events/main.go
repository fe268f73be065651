package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"campus-events-backend/cmd/campus-events/apis"
	"campus-events-backend/cmd/campus-events/model"
	"campus-events-backend/cmd/campus-events/moderation"
	"campus-events-backend/cmd/campus-events/notify"
	"campus-events-backend/cmd/campus-events/policy"
	"campus-events-backend/cmd/campus-events/profanity"
	"campus-events-backend/cmd/campus-events/repository"
	"campus-events-backend/cmd/campus-events/validation"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const envPrefix = "CAMPUS_EVENTS"

type EnvCfg struct {
	DBHost       string        `envconfig:"DB_HOST" required:"true"`
	DBPort       int           `envconfig:"DB_PORT" required:"true"`
	DBUser       string        `envconfig:"DB_USER" required:"true"`
	DBPassword   string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string        `envconfig:"DB_NAME" required:"true"`
	JWTSecret    string        `envconfig:"JWT_SECRET" required:"true"`
	Port         string        `envconfig:"PORT" default:"8080"`
	DenylistPath string        `envconfig:"DENYLIST_PATH"`
	Timezone     string        `envconfig:"TIMEZONE" default:"UTC"`
	ReminderLead time.Duration `envconfig:"REMINDER_LEAD" default:"1h"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	Debug        bool          `envconfig:"DEBUG" default:"false"`
	AutoMigrate  bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

func loadConfig() (EnvCfg, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg EnvCfg
	err := envconfig.Process(envPrefix, &cfg)
	return cfg, err
}

func dsn(cfg EnvCfg) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
}

func parseLogLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func loadDenylist(path string) (profanity.Denylist, error) {
	if path == "" {
		return profanity.Denylist{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return profanity.LoadDenylistCSV(f)
}

// newServer wires repositories, the policy engine and the HTTP handlers.
func newServer(cfg EnvCfg, db *gorm.DB, loc *time.Location, denylist profanity.Denylist) *echo.Echo {
	level := parseLogLevel(cfg.LogLevel)
	newLogger := func(prefix string) *log.Logger {
		l := log.New(prefix)
		l.SetLevel(level)
		return l
	}

	validate := validator.New()

	eventRepo := repository.NewEventRepo(db)
	policyStore := policy.NewStore(
		repository.NewPolicyRepo(db),
		validate,
		newLogger("policy"),
	)
	holder := profanity.NewHolder(denylist)

	svc := moderation.NewService(moderation.Options{
		Events:   eventRepo,
		Policies: policyStore,
		Validator: validation.NewValidator(
			policyStore,
			eventRepo,
			loc,
			newLogger("validation"),
		),
		Denylist:  holder,
		Reminders: notify.NewLogScheduler(cfg.ReminderLead, newLogger("notify")),
		Location:  loc,
		Logger:    newLogger("moderation"),
	})

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(level)
	e.Validator = apis.NewRequestValidator(validate)
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	auth := apis.NewAuthMiddleware([]byte(cfg.JWTSecret))

	rootg := e.Group("")
	v1g := rootg.Group("/api/v1")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	apis.
		NewEventAPI(svc, auth, apis.NewOptionalAuthMiddleware([]byte(cfg.JWTSecret)), cfg.Debug).
		Setup(v1g)

	apis.
		NewPolicyAPI(policyStore, auth).
		Setup(v1g)

	apis.
		NewModerationAPI(svc).
		Setup(v1g.Group("/moderation", auth, apis.RequireRole(apis.RoleModerator, apis.RoleAdmin)))

	apis.
		NewDenylistAPI(holder).
		Setup(v1g.Group("/admin", auth, apis.RequireRole(apis.RoleAdmin)))

	return e
}

func main() {
	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		panic(err)
	}

	gormLogLevel := logger.Warn
	if cfg.Debug {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(
		postgres.Open(dsn(cfg)),
		&gorm.Config{
			Logger: logger.Default.LogMode(gormLogLevel),
		},
	)
	if err != nil {
		panic(err)
	}

	if cfg.AutoMigrate {
		err = db.AutoMigrate(&model.Event{}, &model.EventPolicyRecord{})
		if err != nil {
			panic(err)
		}
	}

	denylist, err := loadDenylist(cfg.DenylistPath)
	if err != nil {
		panic(err)
	}

	e := newServer(cfg, db, loc, denylist)

	e.Logger.Infof("loaded %d denylist entries, calendar days in %s", len(denylist), loc)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
