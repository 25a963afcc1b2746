package history

import (
	"io"
	"os"
)

// Load opens the history file and passes it to read. A missing history
// file is not an error (spec §6.3); any other error is returned.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}
