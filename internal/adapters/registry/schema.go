package registry

import (
	"bytes"
	"encoding/json"

	"github.com/humotica/kit/internal/core/domain"
	"go.trai.ch/zerr"
)

// packageDTO mirrors one entry of the registry document. Unknown fields are
// ignored; missing fields take the zero value and are defaulted by
// domain.NewPackage.
type packageDTO struct {
	Name          string         `json:"name"`
	Version       string         `json:"version"`
	Description   string         `json:"description"`
	TrustScore    float64        `json:"trust_score"`
	JISCompliant  bool           `json:"jis_compliant"`
	SNAFTVerified bool           `json:"snaft_verified"`
	PyPI          string         `json:"pypi"`
	NPM           string         `json:"npm"`
	Dependencies  []string       `json:"dependencies"`
	MCPConfig     map[string]any `json:"mcp_config"`
	Author        string         `json:"author"`
}

type documentEntry struct {
	key string
	dto packageDTO
}

var errMalformedDocument = zerr.New("registry document is not a JSON object")

// decodeDocument streams the top-level "packages" object token by token so
// that entry order follows the document. encoding/json maps would randomize
// iteration order, which Search and ListAll must not do.
func decodeDocument(data []byte) ([]documentEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var entries []documentEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		if key != "packages" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}

		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, _ := nameTok.(string)

			var dto packageDTO
			if err := dec.Decode(&dto); err != nil {
				return nil, err
			}
			entries = append(entries, documentEntry{key: name, dto: dto})
		}
		// Consume the closing brace of the packages object.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errMalformedDocument
	}
	return nil
}

// buildRecords converts document entries into defaulted Package records with
// a lowercase-name index. A duplicate normalized name replaces the earlier
// record in place, keeping its original position.
func buildRecords(entries []documentEntry) ([]*domain.Package, map[string]int) {
	packages := make([]*domain.Package, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		pkg := domain.NewPackage(e.key, domain.PackageSpec{
			Name:          e.dto.Name,
			Version:       e.dto.Version,
			Description:   e.dto.Description,
			TrustScore:    e.dto.TrustScore,
			JISCompliant:  e.dto.JISCompliant,
			SNAFTVerified: e.dto.SNAFTVerified,
			Dependencies:  e.dto.Dependencies,
			PyPI:          e.dto.PyPI,
			NPM:           e.dto.NPM,
			MCPConfig:     e.dto.MCPConfig,
			Author:        e.dto.Author,
		})

		key := domain.NormalizeName(e.key)
		if i, exists := index[key]; exists {
			packages[i] = pkg
			continue
		}
		index[key] = len(packages)
		packages = append(packages, pkg)
	}

	return packages, index
}
