// Package checkpointer saves the tables computed by agents to disk, and
// loads them back
package checkpointer

import (
	"encoding"
	"fmt"
	"os"
)

// Checkpointer saves objects to files whose names are generated by a
// naming function.
//
// To save each object in a separate file with an incremented number as
// a suffix (e.g. file1.bin, file2.bin, ..., fileK.bin), use
// FilenameEnumerator to create the naming function.
type Checkpointer struct {
	filename func() string
}

// New returns a new Checkpointer which names files using filename
func New(filename func() string) *Checkpointer {
	return &Checkpointer{filename: filename}
}

// Checkpoint saves object to the next file name and returns the name of
// the file written
func (c *Checkpointer) Checkpoint(object encoding.BinaryMarshaler) (string,
	error) {
	filename := c.filename()
	if err := Save(object, filename); err != nil {
		return "", fmt.Errorf("checkpoint: %w", err)
	}
	return filename, nil
}

// Save saves the binary encoding of object to filename
func Save(object encoding.BinaryMarshaler, filename string) error {
	data, err := object.MarshalBinary()
	if err != nil {
		return fmt.Errorf("save: could not encode %T: %w", object, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Load decodes the contents of filename into object
func Load(filename string, object encoding.BinaryUnmarshaler) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if err := object.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("load: could not decode %T: %w", object, err)
	}
	return nil
}
