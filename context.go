package mrepo

import (
	"fmt"
	"path/filepath"

	"github.com/mrepo-go/mrepo/internal/model"
)

// Context is the immutable snapshot a repository's working tree is loaded
// into: the parsed configuration plus the on-disk layout it was loaded
// relative to. Every operation (Format, Update, Upgrade) is built from one
// Context and never mutates it.
type Context struct {
	log        model.Log
	repository model.Repository
	modules    []model.Module

	configPath string
	jsonDir    string
	modulesDir string
}

// Build loads configPath relative to workingDir, deriving the json and
// modules directories from workingDir rather than from configPath's own
// location.
func Build(configPath, workingDir string) (*Context, error) {
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(workingDir, configPath)
	}
	jsonDir := filepath.Join(workingDir, JSONDir)
	modulesDir := filepath.Join(workingDir, ModulesDir)
	return newContext(configPath, jsonDir, modulesDir)
}

// FromWorkingDir loads the config at <workingDir>/json/config.json, the
// conventional layout for a repository managed entirely by this tool.
func FromWorkingDir(workingDir string) (*Context, error) {
	jsonDir := filepath.Join(workingDir, JSONDir)
	modulesDir := filepath.Join(workingDir, ModulesDir)
	configPath := filepath.Join(jsonDir, ConfigJSON)
	return newContext(configPath, jsonDir, modulesDir)
}

func newContext(configPath, jsonDir, modulesDir string) (*Context, error) {
	config, err := model.FromFile[model.Config](configPath)
	if err != nil {
		return nil, fmt.Errorf("mrepo: load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("mrepo: %w", err)
	}

	return &Context{
		log:        config.Log,
		repository: config.Repository,
		modules:    config.Modules,
		configPath: configPath,
		jsonDir:    jsonDir,
		modulesDir: modulesDir,
	}, nil
}

// Log returns the logging configuration loaded from the context's config
// file, for a caller to initialize the global logger from before running
// any operation.
func (c *Context) Log() model.Log {
	return c.log
}

// ModulesDir returns the directory staged archives and track files are
// stored under.
func (c *Context) ModulesDir() string {
	return c.modulesDir
}
