package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/sahilm/fuzzy"
)

// artifactFile is the shape shared by hardhat and foundry artifacts. The
// bytecode is a hex string in hardhat output and an object in foundry output.
type artifactFile struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

type foundryBytecode struct {
	Object string `json:"object"`
}

// Loader finds compiled contract artifacts by contract name. Directories are
// searched in order and the first match wins.
type Loader struct {
	dirs  []string
	index map[string]string // contract name -> artifact path
	mu    sync.Mutex
}

// NewLoader creates a new artifact loader
func NewLoader(cfg *config.RuntimeConfig) *Loader {
	return &Loader{dirs: cfg.ArtifactDirs}
}

// FindArtifact returns the parsed artifact for a contract name
func (l *Loader) FindArtifact(ctx context.Context, contractName string) (*domain.ContractArtifact, error) {
	index, err := l.buildIndex()
	if err != nil {
		return nil, err
	}

	path, ok := index[contractName]
	if !ok {
		return nil, l.notFound(contractName, index)
	}

	return readArtifact(contractName, path)
}

// buildIndex walks the artifact directories once
func (l *Loader) buildIndex() (map[string]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index != nil {
		return l.index, nil
	}

	index := make(map[string]string)
	for _, dir := range l.dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if info.Name() == "build-info" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
				return nil
			}

			name := strings.TrimSuffix(info.Name(), ".json")
			if _, exists := index[name]; !exists {
				index[name] = path
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan artifacts in %s: %w", dir, err)
		}
	}

	l.index = index
	return index, nil
}

// notFound builds an error with close matches for a missing contract
func (l *Loader) notFound(contractName string, index map[string]string) error {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}

	matches := fuzzy.Find(contractName, names)
	if len(matches) == 0 {
		return fmt.Errorf("%w: no artifact for %s in %s (did you compile the contracts?)",
			domain.ErrContractNotFound, contractName, strings.Join(l.dirs, ", "))
	}

	suggestions := make([]string, 0, 3)
	for i, match := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return fmt.Errorf("%w: no artifact for %s, did you mean %s?",
		domain.ErrContractNotFound, contractName, strings.Join(suggestions, ", "))
}

// readArtifact parses the ABI and creation bytecode of an artifact file
func readArtifact(contractName, path string) (*domain.ContractArtifact, error) {
	data, err := os.ReadFile(path) //nolint:gosec // artifact path from index
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if len(file.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", path)
	}

	parsed, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi in %s: %w", path, err)
	}

	bytecode, err := decodeBytecode(file.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has no bytecode (abstract contract or interface?)", path)
	}

	return &domain.ContractArtifact{
		Name:     contractName,
		Path:     path,
		ABI:      parsed,
		Bytecode: bytecode,
	}, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var hex string
	if raw[0] == '{' {
		var obj foundryBytecode
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		hex = obj.Object
	} else if err := json.Unmarshal(raw, &hex); err != nil {
		return nil, err
	}

	if hex == "" || hex == "0x" {
		return nil, nil
	}
	if !strings.HasPrefix(hex, "0x") {
		hex = "0x" + hex
	}
	if strings.Contains(hex, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library placeholders")
	}
	return hexutil.Decode(hex)
}

// Ensure the loader implements the interface
var _ usecase.ArtifactRepository = (*Loader)(nil)
