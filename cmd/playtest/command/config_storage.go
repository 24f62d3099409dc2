package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/splatforge/go-playtest/internal/game"
	"github.com/splatforge/go-playtest/internal/storage"
)

type StorageConfig struct {
	Experiences AssetConfig[*game.Experience] `json:"experiences"`
	Scenes      AssetConfig[*game.Scene]      `json:"scenes"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Experiences.Validate("experiences"))
	el.Add(c.Scenes.Validate("scenes"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
