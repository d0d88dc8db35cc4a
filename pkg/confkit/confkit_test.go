package confkit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"coindash-api/pkg/confkit"
)

func TestResolvePath(t *testing.T) {
	require.Equal(t, "/abs/file.yaml", confkit.ResolvePath("/base", "/abs/file.yaml"))
	require.Equal(t, filepath.Join("/base", "conf", "file.yaml"),
		confkit.ResolvePath("/base", "conf/file.yaml"))
}

func TestResolvePathExpandsEnv(t *testing.T) {
	t.Setenv("CONFKIT_TEST_DIR", "expanded")
	require.Equal(t, filepath.Join("/base", "expanded", "file.yaml"),
		confkit.ResolvePath("/base", "${CONFKIT_TEST_DIR}/file.yaml"))
}

func TestBaseDir(t *testing.T) {
	require.Equal(t, "/etc/coindash", confkit.BaseDir("/etc/coindash/coindash.yaml"))
	require.Equal(t, "etc", confkit.BaseDir("etc/coindash.yaml"))
}

func TestLoadFile(t *testing.T) {
	type payload struct {
		Name string `json:",optional"`
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "section.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: candles\n"), 0o644))

	cfg, err := confkit.LoadFile[payload](path, false)
	require.NoError(t, err)
	require.Equal(t, "candles", cfg.Name)

	_, err = confkit.LoadFile[payload](filepath.Join(dir, "missing.yaml"), false)
	require.Error(t, err)
}

func TestSectionHydrate(t *testing.T) {
	t.Run("empty file is a no-op", func(t *testing.T) {
		section := &confkit.Section[string]{}
		err := section.Hydrate("/base", func(string) (*string, error) {
			t.Fatal("loader must not run for an empty File")
			return nil, nil
		})
		require.NoError(t, err)
		require.Nil(t, section.Value)
	})

	t.Run("resolves path and fills value", func(t *testing.T) {
		section := &confkit.Section[string]{File: "market.yaml"}
		want := "hydrated"
		err := section.Hydrate("/base", func(path string) (*string, error) {
			require.Equal(t, filepath.Join("/base", "market.yaml"), path)
			return &want, nil
		})
		require.NoError(t, err)
		require.Equal(t, filepath.Join("/base", "market.yaml"), section.File)
		require.NotNil(t, section.Value)
		require.Equal(t, want, *section.Value)
	})

	t.Run("loader error propagates", func(t *testing.T) {
		section := &confkit.Section[string]{File: "market.yaml"}
		boom := errors.New("boom")
		err := section.Hydrate("/base", func(string) (*string, error) {
			return nil, boom
		})
		require.ErrorIs(t, err, boom)
	})
}
