// Package config provides configuration management for the Slim maintenance tool.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the project layout and tool settings for one run.
type Config struct {
	// Root is the project directory every relative path is resolved against.
	Root string `mapstructure:"-"`

	AssetsDir    string `mapstructure:"assets_dir"`
	SourceDir    string `mapstructure:"source_dir"`
	SourceExt    string `mapstructure:"source_ext"`
	ResourceFile string `mapstructure:"resource_file"`
	WebDir       string `mapstructure:"web_dir"`
	Manifest     string `mapstructure:"manifest"`

	// PackageName is the project's own import namespace. Empty means "use the
	// name declared in the manifest".
	PackageName string `mapstructure:"package_name"`

	FirstParty  []string `mapstructure:"first_party"`
	IgnoreNames []string `mapstructure:"ignore_names"`
	ImageExts   []string `mapstructure:"image_exts"`

	// MaxDimension is the longest image side, in pixels, before an image is
	// flagged as oversized. Zero turns the check off.
	MaxDimension int `mapstructure:"max_dimension"`

	Compress CompressConfig `mapstructure:"compress"`
}

// CompressConfig controls image recompression.
type CompressConfig struct {
	Tool            string        `mapstructure:"tool"`
	WebPQuality     int           `mapstructure:"webp_quality"`
	WebPMethod      int           `mapstructure:"webp_method"`
	PNGQuality      int           `mapstructure:"png_quality"`
	MinSavingsRatio float64       `mapstructure:"min_savings_ratio"`
	PNGLossless     bool          `mapstructure:"png_lossless"`
	Concurrency     int           `mapstructure:"concurrency"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// LoadOptions selects where configuration comes from.
type LoadOptions struct {
	// Root is the project directory. Defaults to ".".
	Root string
	// File is an explicit config file. When empty, <Root>/slim.{yaml,yml,json,toml}
	// is used if present.
	File string
	// Flags are bound to keys of the same name with '-' replaced by '_'.
	Flags *pflag.FlagSet
}

// setDefaultValues registers the defaults for every known key
func setDefaultValues(v *viper.Viper) {
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("source_dir", "lib")
	v.SetDefault("source_ext", ".dart")
	v.SetDefault("resource_file", "lib/const/resource.dart")
	v.SetDefault("web_dir", "web")
	v.SetDefault("manifest", "pubspec.yaml")
	v.SetDefault("package_name", "")
	v.SetDefault("first_party", []string{"flutter"})
	v.SetDefault("ignore_names", []string{".DS_Store"})
	v.SetDefault("image_exts", []string{".webp", ".png", ".jpg", ".jpeg"})
	v.SetDefault("max_dimension", 2048)

	v.SetDefault("compress.tool", "cwebp")
	v.SetDefault("compress.webp_quality", 80)
	v.SetDefault("compress.webp_method", 6)
	v.SetDefault("compress.png_quality", 85)
	v.SetDefault("compress.min_savings_ratio", 0.8)
	v.SetDefault("compress.png_lossless", false)
	v.SetDefault("compress.concurrency", 1)
	v.SetDefault("compress.timeout", 2*time.Minute)
}

// Load reads defaults, the optional config file, SLIM_* environment variables and
// bound flags, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	root := opts.Root
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	v := viper.New()
	setDefaultValues(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		file := opts.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(root, file)
		}
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(root)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config in %s: %w", root, err)
			}
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Root = root

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !v.IsSet(key) {
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("binding flag --%s: %w", f.Name, err)
		}
	})
	return bindErr
}

// Validate checks the settings that would otherwise fail late, mid-run.
func (c *Config) Validate() error {
	required := map[string]string{
		"assets_dir": c.AssetsDir,
		"source_dir": c.SourceDir,
		"source_ext": c.SourceExt,
		"manifest":   c.Manifest,
	}
	for key, val := range required {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, key)
		}
	}

	if c.MaxDimension < 0 {
		return fmt.Errorf("%w: max_dimension must not be negative, got %d", ErrInvalidConfig, c.MaxDimension)
	}

	cc := c.Compress
	if strings.TrimSpace(cc.Tool) == "" {
		return fmt.Errorf("%w: compress.tool must not be empty", ErrInvalidConfig)
	}
	if cc.WebPQuality < 0 || cc.WebPQuality > 100 {
		return fmt.Errorf("%w: compress.webp_quality must be within 0..100, got %d", ErrInvalidConfig, cc.WebPQuality)
	}
	if cc.PNGQuality < 0 || cc.PNGQuality > 100 {
		return fmt.Errorf("%w: compress.png_quality must be within 0..100, got %d", ErrInvalidConfig, cc.PNGQuality)
	}
	if cc.WebPMethod < 0 || cc.WebPMethod > 6 {
		return fmt.Errorf("%w: compress.webp_method must be within 0..6, got %d", ErrInvalidConfig, cc.WebPMethod)
	}
	if cc.MinSavingsRatio <= 0 || cc.MinSavingsRatio > 1 {
		return fmt.Errorf("%w: compress.min_savings_ratio must be within (0, 1], got %g", ErrInvalidConfig, cc.MinSavingsRatio)
	}
	if cc.Concurrency < 1 {
		return fmt.Errorf("%w: compress.concurrency must be at least 1, got %d", ErrInvalidConfig, cc.Concurrency)
	}
	if cc.Timeout <= 0 {
		return fmt.Errorf("%w: compress.timeout must be positive, got %s", ErrInvalidConfig, cc.Timeout)
	}
	return nil
}

// Path resolves a project-relative path against Root.
func (c *Config) Path(rel string) string {
	if rel == "" {
		return ""
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(c.Root, filepath.FromSlash(rel))
}
