package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite defines a test suite for configuration file loading.
type ConfigTestSuite struct {
	suite.Suite
	tempDir string // Temporary directory for test files
}

// SetupSuite prepares the test environment by creating a temporary directory.
func (s *ConfigTestSuite) SetupSuite() {
	tempDir, err := os.MkdirTemp("", "clipsmith-config-test")
	require.NoError(s.T(), err)
	s.tempDir = tempDir
}

// TearDownSuite cleans up the test environment by removing the temporary directory.
func (s *ConfigTestSuite) TearDownSuite() {
	os.RemoveAll(s.tempDir)
}

// TestLoadConfig tests that a valid configuration file populates the
// Config struct.
func (s *ConfigTestSuite) TestLoadConfig() {
	path := filepath.Join(s.tempDir, "config.toml")
	content := "ffmpeg_path = \"/opt/ffmpeg/bin/ffmpeg\"\noutput_dir = \"renders\"\n"
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o644))

	config, err := loadConfig(path)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/opt/ffmpeg/bin/ffmpeg", config.FFmpegPath)
	assert.Equal(s.T(), "renders", config.OutputDir)
}

// TestLoadConfigInvalid tests that a malformed configuration file yields
// an error.
func (s *ConfigTestSuite) TestLoadConfigInvalid() {
	path := filepath.Join(s.tempDir, "broken.toml")
	require.NoError(s.T(), os.WriteFile(path, []byte("ffmpeg_path = [unclosed"), 0o644))

	_, err := loadConfig(path)
	assert.Error(s.T(), err)
}

// TestLoadConfigMissing tests that a missing configuration file is not an
// error and yields an empty configuration.
func (s *ConfigTestSuite) TestLoadConfigMissing() {
	config, err := loadConfig(filepath.Join(s.tempDir, "no-such-file.toml"))
	require.NoError(s.T(), err)
	assert.Empty(s.T(), config.FFmpegPath)
	assert.Empty(s.T(), config.OutputDir)
}

// TestConfigSuite runs the configuration test suite.
func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
