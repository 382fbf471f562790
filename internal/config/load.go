package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Raunow/jig/internal/log"
	"github.com/Raunow/jig/internal/tree"
)

// Load resolves the configuration from the global config file and the
// workspace .jig.toml.
func Load(ctx context.Context) (*Config, error) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}
	workspacePath, err := WorkspaceConfigPath()
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}
	return LoadFiles(ctx, globalPath, workspacePath)
}

// LoadFiles resolves the configuration from explicit global and workspace
// file paths. A layer that cannot be read or parsed is skipped as long as the
// other layer can be used; if neither can, the global layer's error is
// returned.
func LoadFiles(ctx context.Context, globalPath, workspacePath string) (*Config, error) {
	logger := log.FromContext(ctx)

	global, globalErr := readLayer(LayerGlobal, globalPath)
	workspace, workspaceErr := readLayer(LayerWorkspace, workspacePath)
	logLayer(logger, LayerGlobal, globalPath, globalErr)
	logLayer(logger, LayerWorkspace, workspacePath, workspaceErr)

	var (
		raw RawConfig
		err error
	)
	switch {
	case globalErr == nil && workspaceErr == nil:
		raw, err = decode(tree.Merge(global, workspace, MergeDepth))
		if err != nil {
			return nil, fmt.Errorf("config load error: bad configs: %w", err)
		}
	case globalErr == nil:
		raw, err = decode(global)
		if err != nil {
			return nil, fmt.Errorf("config load error: bad global config: %w", err)
		}
	case workspaceErr == nil:
		raw, err = decode(workspace)
		if err != nil {
			return nil, fmt.Errorf("config load error: bad workspace config: %w", err)
		}
	default:
		// global is the primary source; its cause is the one reported
		return nil, fmt.Errorf("config load error: %w", globalErr)
	}

	cfg, err := Resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("config load error: bad config: %w", err)
	}
	return cfg, nil
}

// readLayer reads and parses one config file into a tree.
func readLayer(layer Layer, path string) (tree.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tree.Value{}, &LayerError{Layer: layer, Path: path, Err: fmt.Errorf("%w: %w", ErrSourceUnreadable, err)}
	}

	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return tree.Value{}, &LayerError{Layer: layer, Path: path, Err: fmt.Errorf("%w: %w", ErrSourceMalformed, err)}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return tree.FromTOML(doc), nil
}

// logLayer reports a layer outcome. A missing file is routine; any other
// failure is worth a warning since that layer's settings are being dropped.
func logLayer(logger *log.Logger, layer Layer, path string, err error) {
	switch {
	case err == nil:
		logger.Debug("loaded config layer", "layer", layer, "path", path)
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("config layer not found", "layer", layer, "path", path)
	default:
		logger.Warnf("ignoring %s config: %v", layer, err)
	}
}

// decode converts a tree into RawConfig, rejecting unknown keys, missing
// required keys, and values of the wrong type.
func decode(v tree.Value) (RawConfig, error) {
	if v.Kind() != tree.KindMapping {
		return RawConfig{}, fmt.Errorf("%w: expected a table, got %s", ErrDecodeRejected, v.Kind())
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v.Interface()); err != nil {
		return RawConfig{}, fmt.Errorf("%w: %w", ErrDecodeRejected, err)
	}

	var raw RawConfig
	md, err := toml.Decode(buf.String(), &raw)
	if err != nil {
		return RawConfig{}, fmt.Errorf("%w: %w", ErrDecodeRejected, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = fmt.Sprintf("%q", k.String())
		}
		return RawConfig{}, fmt.Errorf("%w: unknown field %s", ErrDecodeRejected, strings.Join(keys, ", "))
	}

	for _, key := range requiredKeys {
		if !md.IsDefined(key) {
			return RawConfig{}, fmt.Errorf("%w: missing field %q", ErrDecodeRejected, key)
		}
	}

	if err := checkTimeout(v, raw.Timeout); err != nil {
		return RawConfig{}, err
	}

	return raw, nil
}

// checkTimeout rejects timeouts that are negative or too large for a
// time.Duration. The toml decoder stores a negative integer into a uint64
// without complaint, so the sign is read from the tree.
func checkTimeout(v tree.Value, timeout *uint64) error {
	if timeout == nil {
		return nil
	}
	if node, ok := v.Get("timeout"); ok {
		if n, ok := node.ScalarValue().(int64); ok && n < 0 {
			return fmt.Errorf("%w: timeout: %d is negative", ErrDecodeRejected, n)
		}
	}
	if *timeout > MaxTimeoutSeconds {
		return fmt.Errorf("%w: timeout: %d is out of range (max %d seconds)", ErrDecodeRejected, *timeout, MaxTimeoutSeconds)
	}
	return nil
}
