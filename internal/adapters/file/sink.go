package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"balebridge/internal/core/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const recordsFile = "records.jsonl"

// storedRecord is how a record is written to disk: binary payloads are
// replaced by the path of the file holding them.
type storedRecord struct {
	JSON      map[string]any          `json:"json"`
	Binary    map[string]storedBinary `json:"binary"`
	ItemIndex int                     `json:"item_index"`
}

type storedBinary struct {
	Path     string `json:"path"`
	FileName string `json:"fileName,omitempty"`
	Size     int    `json:"size"`
}

// DirSink appends records to records.jsonl in a directory and stores every
// binary payload next to it under a random name.
type DirSink struct {
	dir   string
	mutex sync.Mutex
}

func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		err = fmt.Errorf("error creating output directory: %w", err)
		log.Error().Err(err).Str("dir", dir).Send()
		return nil, err
	}

	return &DirSink{dir: dir}, nil
}

func (s *DirSink) Emit(_ context.Context, record domain.OutboundRecord) error {
	stored := storedRecord{
		JSON:      record.JSON,
		Binary:    make(map[string]storedBinary, len(record.Binary)),
		ItemIndex: record.ItemIndex,
	}

	for key, bin := range record.Binary {
		path, err := SaveFile(s.dir, bin.Data, filepath.Ext(bin.FileName))
		if err != nil {
			return err
		}
		stored.Binary[key] = storedBinary{Path: path, FileName: bin.FileName, Size: len(bin.Data)}
	}

	line, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	f, err := os.OpenFile(filepath.Join(s.dir, recordsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		err = fmt.Errorf("error opening records file: %w", err)
		log.Error().Err(err).Send()
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		err = fmt.Errorf("error writing record: %w", err)
		log.Error().Err(err).Send()
		return err
	}

	log.Debug().Int("binaries", len(stored.Binary)).Msg("record stored")

	return nil
}

// SaveFile writes data to a new uniquely named file in dir and returns its path.
func SaveFile(dir string, data []byte, extension string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, id.String()+extension)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		err = fmt.Errorf("error writing file: %w", err)
		log.Error().Err(err).Send()
		return "", err
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("created file")

	return path, nil
}

// WriterSink writes every record as one JSON line. Binary data is base64
// encoded by encoding/json.
type WriterSink struct {
	enc   *json.Encoder
	mutex sync.Mutex
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{enc: json.NewEncoder(w)}
}

func (s *WriterSink) Emit(_ context.Context, record domain.OutboundRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.enc.Encode(record); err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}

	return nil
}

// ReadBatch decodes an execution request. Binary data is expected base64
// encoded.
func ReadBatch(r io.Reader) (*domain.Batch, error) {
	var batch domain.Batch
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		err = fmt.Errorf("error decoding batch: %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	return &batch, nil
}
