package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// LoadWithEnv reads <name>.yaml from the first directory that has it (the
// working directory first, then dirs relative to it) and overlays environment
// variables. POSTGRES_SSLMODE overrides postgres.sslMode: each underscore
// separated segment is matched against the YAML keys ignoring case.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fileKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(fileName string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := []string{filepath.Join(wd, fileName)}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, fileName))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s or %v", fileName, wd, dirs)
}

// canonicalizeEnvKey follows the existing key tree as far as it can and
// lower-cases whatever is left.
func canonicalizeEnvKey(envKey string, tree map[string]any) string {
	var path []string
	node := tree

	for _, segment := range strings.Split(strings.ToLower(envKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func matchKey(node map[string]any, segment string) (string, map[string]any) {
	want := normalizeToken(segment)
	for key, value := range node {
		if normalizeToken(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
