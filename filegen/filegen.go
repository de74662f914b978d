package filegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marofke/aws-rfdk/filereader/texttemplate"
)

// CreateFileFromTemplate renders fileTemplate with templateOpts and writes
// the result to outputFilePath. It refuses to overwrite an existing file.
func CreateFileFromTemplate(outputFilePath string, templateOpts interface{}, fileTemplate []byte) error {
	rendered, err := texttemplate.GetString(filepath.Base(outputFilePath), string(fileTemplate), templateOpts)
	if err != nil {
		return fmt.Errorf("error exec-ing default config template: %v", err)
	}

	dir := filepath.Dir(outputFilePath)
	if _, err := os.Stat(dir); err != nil && os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}

	out, err := os.OpenFile(outputFilePath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("error opening %s : %v", outputFilePath, err)
	}
	defer out.Close()

	if _, err := out.WriteString(rendered); err != nil {
		return fmt.Errorf("error writing %s : %v", outputFilePath, err)
	}
	return nil
}

// Render writes all the given files to disk.
func Render(files ...file) error {
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.name), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(f.name, f.data, f.mode); err != nil {
			return err
		}
	}
	return nil
}

type file struct {
	name string
	data []byte
	mode os.FileMode
}

func File(name string, data []byte, mode os.FileMode) file {
	return file{
		name: name,
		data: data,
		mode: mode,
	}
}
