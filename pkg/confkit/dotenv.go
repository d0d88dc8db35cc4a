package confkit

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// LoadDotenvOnce loads environment variables from a .env file found by
// walking upwards from this source file to the repository root. The
// first call wins; later calls are no-ops. Existing variables are kept
// unless DOTENV_OVERLOAD=1 is set, and NO_DOTENV=1 disables loading
// entirely (tests set it to stay hermetic).
func LoadDotenvOnce() {
	dotenvOnce.Do(loadDotenv)
}

func loadDotenv() {
	if os.Getenv("NO_DOTENV") == "1" {
		return
	}

	overload := os.Getenv("DOTENV_OVERLOAD") == "1"
	load := func(paths ...string) {
		if overload {
			_ = godotenv.Overload(paths...)
		} else {
			_ = godotenv.Load(paths...)
		}
	}

	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		load(envFile)
		return
	}

	if _, file, _, ok := runtime.Caller(0); ok {
		walkUp(filepath.Dir(file), func(dir string) {
			load(filepath.Join(dir, ".env"))
		})
		return
	}

	load(".env")
}
