package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
)

// Codec turns the recipe list into bytes and back.
type Codec interface {
	// Name is the format name, also used as the slot file extension.
	Name() string
	Encode(recipes []domain.Recipe) ([]byte, error)
	Decode(data []byte) ([]domain.Recipe, error)
}

// CodecFor returns the codec registered under name ("json" or "yaml").
func CodecFor(name string) (Codec, error) {
	switch name {
	case "json", "":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// recipeDoc is the persisted shape of a recipe. The derived total is
// not stored.
type recipeDoc struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Ingredients []ingredientDoc `json:"ingredients" yaml:"ingredients"`
}

type ingredientDoc struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Amount int     `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
	Price  float64 `json:"price" yaml:"price"`
}

// toDocs converts recipes for encoding. An ingredient with an amount or
// price out of range fails with ErrEncode, whatever the format.
func toDocs(recipes []domain.Recipe) ([]recipeDoc, error) {
	docs := make([]recipeDoc, 0, len(recipes))
	for _, r := range recipes {
		ings := make([]ingredientDoc, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			if err := ing.Validate(); err != nil {
				return nil, fmt.Errorf("%w: recipe %q: %w", domain.ErrEncode, r.Name, err)
			}
			ings = append(ings, ingredientDoc{
				ID:     ing.ID,
				Name:   ing.Name,
				Amount: ing.Amount,
				Unit:   ing.Unit,
				Price:  ing.Price,
			})
		}
		docs = append(docs, recipeDoc{ID: r.ID, Name: r.Name, Ingredients: ings})
	}
	return docs, nil
}

// fromDocs converts decoded documents. A blob holding a negative amount
// or a negative or non-finite price is rejected with ErrDecode.
func fromDocs(docs []recipeDoc) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0, len(docs))
	for _, d := range docs {
		ings := make([]domain.Ingredient, 0, len(d.Ingredients))
		for _, doc := range d.Ingredients {
			ing := domain.Ingredient{
				ID:     doc.ID,
				Name:   doc.Name,
				Amount: doc.Amount,
				Unit:   doc.Unit,
				Price:  doc.Price,
			}
			if err := ing.Validate(); err != nil {
				return nil, fmt.Errorf("%w: recipe %q: %w", domain.ErrDecode, d.Name, err)
			}
			ings = append(ings, ing)
		}
		recipes = append(recipes, domain.Recipe{ID: d.ID, Name: d.Name, Ingredients: ings})
	}
	return recipes, nil
}

// JSONCodec is the default persistence format: an indented JSON array.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(recipes []domain.Recipe) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	docs, err := toDocs(recipes)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(docs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func (JSONCodec) Decode(data []byte) ([]domain.Recipe, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var docs []recipeDoc
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	// Anything after the array means the blob is not one we wrote.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after recipe list", domain.ErrDecode)
	}
	return fromDocs(docs)
}

// YAMLCodec writes the same document as YAML with two-space indents.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Encode(recipes []domain.Recipe) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	docs, err := toDocs(recipes)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(docs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Decode(data []byte) ([]domain.Recipe, error) {
	var docs []recipeDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return fromDocs(docs)
}
