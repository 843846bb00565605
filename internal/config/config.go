package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config holds all runtime settings. Defaults are tuned for a single
// long-running companion process; everything can be overridden through
// the environment (or a .env file).
type Config struct {
	DataRoot    string `env:"DATA_ROOT" envDefault:"data/echomind"`
	StoragePath string `env:"STORAGE_PATH" envDefault:"data/echomind/snapshots.json"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8790"`
	AIProvider  string `env:"AI_PROVIDER" envDefault:"pollinations"`

	MemoryCapacity    int           `env:"MEMORY_CAPACITY" envDefault:"10"`
	KnowledgeCapacity int           `env:"KNOWLEDGE_CAPACITY" envDefault:"500"`
	DedupWindow       time.Duration `env:"DEDUP_WINDOW" envDefault:"1h"`
	SearchTopK        int           `env:"SEARCH_TOP_K" envDefault:"3"`
	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`

	ReflectionInterval  time.Duration `env:"REFLECTION_INTERVAL" envDefault:"40s"`
	DreamInterval       time.Duration `env:"DREAM_INTERVAL" envDefault:"90s"`
	ValuesInterval      time.Duration `env:"VALUES_INTERVAL" envDefault:"120s"`
	MemoryTagInterval   time.Duration `env:"MEMORY_TAG_INTERVAL" envDefault:"30s"`
	CuriosityPoll       time.Duration `env:"CURIOSITY_POLL" envDefault:"2s"`
	BookInterval        time.Duration `env:"BOOK_INTERVAL" envDefault:"3m"`
	SnapshotInterval    time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"10s"`
	InitiationInterval  time.Duration `env:"INITIATION_INTERVAL" envDefault:"60s"`
	ExplorationInterval time.Duration `env:"EXPLORATION_INTERVAL" envDefault:"5m"`

	// InterestDecay enables cooling of curiosity topics over time.
	// Off by default; interest only rises unless this is set.
	InterestDecay     bool          `env:"INTEREST_DECAY" envDefault:"false"`
	InterestDecayHalf time.Duration `env:"INTEREST_DECAY_HALF" envDefault:"168h"`
}

// New parses config from the environment. Fatal on malformed values;
// workers should never start with a half-parsed config.
func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("[ERR] config parse: %v", err)
	}
	return cfg
}
