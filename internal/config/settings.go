package config

import (
	"time"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// Settings is the merged configuration before CLI flags are applied.
type Settings struct {
	SourceURL  string
	CSVPath    string
	StorePath  string
	SkipHeader *bool // nil leaves the choice to the command
	Timeout    time.Duration
	Retries    int
	Addr       string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		SourceURL: namesetl.DefaultSourceURL,
		CSVPath:   namesetl.DefaultCSVPath,
		StorePath: namesetl.DefaultStorePath,
		Timeout:   namesetl.DefaultPipelineTimeout,
		Addr:      namesetl.DefaultServerAddr,
	}
}

// Merge layers project and env over the defaults.
// Priority (highest to lowest): environment > namesetl.yaml > defaults.
// Either argument may be nil.
func Merge(project *ProjectConfig, envCfg *EnvConfig) (Settings, error) {
	s := Defaults()

	if project != nil {
		setString(&s.SourceURL, project.SourceURL)
		setString(&s.CSVPath, project.CSVPath)
		setString(&s.StorePath, project.StorePath)
		setString(&s.Addr, project.Server.Addr)
		if project.SkipHeader != nil {
			v := *project.SkipHeader
			s.SkipHeader = &v
		}
		if project.Retries != nil {
			s.Retries = *project.Retries
		}
		d, err := project.TimeoutDuration()
		if err != nil {
			return Settings{}, err
		}
		if d != 0 {
			s.Timeout = d
		}
	}

	if envCfg != nil {
		setString(&s.SourceURL, envCfg.SourceURL)
		setString(&s.CSVPath, envCfg.CSVPath)
		setString(&s.StorePath, envCfg.StorePath)
		setString(&s.Addr, envCfg.Addr)
		if envCfg.SkipHeader != nil {
			v := *envCfg.SkipHeader
			s.SkipHeader = &v
		}
		if envCfg.Retries != nil {
			s.Retries = *envCfg.Retries
		}
		if envCfg.Timeout != nil {
			s.Timeout = *envCfg.Timeout
		}
	}

	return s, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
