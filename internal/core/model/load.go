package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tweetscore/internal/core/normalize"
	"tweetscore/internal/platform/logger"
)

// Load reads the artifact at path once. It never fails: a blank path, a
// missing file or a bad artifact is logged and yields an Absent provider
func Load(path string) (p *Provider) {
	log := logger.Named("model")
	path = strings.TrimSpace(path)
	if path == "" {
		log.Error().Msg("MODEL_FILE_PATH not set; serving without a model")
		return Absent("model path not configured")
	}

	defer func() {
		if v := recover(); v != nil {
			log.Error().Str("path", path).Interface("panic", v).Msg("model load panicked")
			p = Absent(fmt.Sprintf("load panicked: %v", v))
			p.info.Path = path
		}
	}()

	m, info, err := load(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("model load failed")
		p = Absent(err.Error())
		p.info.Path = path
		return p
	}
	log.Info().
		Str("path", path).
		Str("name", info.Name).
		Int("features", info.Features).
		Int("ngram_max", info.NgramMax).
		Msg("model loaded")
	return Static(m, info)
}

// load resolves the three accepted layouts: a directory with model.yaml
// and/or weights.json, a single weights .json, or a single .yaml manifest
func load(path string) (Model, Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Info{}, fmt.Errorf("model artifact not found at %s", path)
		}
		return nil, Info{}, err
	}

	var (
		man         Manifest
		weightsPath string
	)
	switch {
	case st.IsDir():
		mp := filepath.Join(path, manifestName)
		if _, err := os.Stat(mp); err == nil {
			if man, err = readManifest(mp); err != nil {
				return nil, Info{}, err
			}
		}
		weightsPath = filepath.Join(path, orDefault(man.Weights, defaultWeightsName))
	case hasExt(path, ".yaml", ".yml"):
		if man, err = readManifest(path); err != nil {
			return nil, Info{}, err
		}
		w := orDefault(man.Weights, defaultWeightsName)
		if !filepath.IsAbs(w) {
			w = filepath.Join(filepath.Dir(path), w)
		}
		weightsPath = w
	case hasExt(path, ".json"):
		weightsPath = path
	default:
		return nil, Info{}, fmt.Errorf("unrecognised model artifact %s", path)
	}

	w, err := readWeights(weightsPath)
	if err != nil {
		return nil, Info{}, err
	}
	lr, err := NewLogReg(w, normalize.Options{
		LeetFold:  man.Normalize.LeetFold,
		MaxRepeat: man.Normalize.MaxRepeat,
	})
	if err != nil {
		return nil, Info{}, err
	}

	name := man.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lr, Info{
		Name:      name,
		Format:    w.Format,
		Path:      path,
		NgramMax:  w.NgramMax,
		Features:  lr.Features(),
		Threshold: man.Threshold,
	}, nil
}

func hasExt(path string, exts ...string) bool {
	e := strings.ToLower(filepath.Ext(path))
	for _, x := range exts {
		if e == x {
			return true
		}
	}
	return false
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
