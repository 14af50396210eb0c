package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/waldcafe/wald/internal/common"
)

// DecodeRows parses raw CSV bytes into a header row and data rows.
// POS terminals export Shift-JIS by default, so that encoding is tried
// first; a structural parse error triggers a full retry as UTF-8.
// Both attempts failing with at most a header row is an encoding
// error; a successfully parsed file with at most a header row is an
// empty-file error.
func DecodeRows(data []byte) (header []string, rows [][]string, err error) {
	sjisRows, sjisErr := parseAll(transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder()))
	if sjisErr == nil {
		return splitHeader(sjisRows)
	}

	slog.Debug("Shift-JIS parse failed, retrying as UTF-8", "error", sjisErr)

	utf8Rows, utf8Err := parseAll(skipBOM(bytes.NewReader(data)))
	if utf8Err != nil && len(utf8Rows) <= 1 {
		return nil, nil, common.NewUserError(
			"Shift_JISおよびUTF-8エンコーディングでのCSV解析に失敗しました",
			common.ErrEncodingFailure)
	}
	return splitHeader(utf8Rows)
}

// parseAll reads every record, tolerating per-row quoting issues. Only
// structural errors that abort the reader are returned, together with
// whatever rows were recovered before the failure.
func parseAll(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, record)
	}
}

func splitHeader(rows [][]string) ([]string, [][]string, error) {
	if len(rows) <= 1 {
		return nil, nil, common.NewUserError(
			"CSVファイルが空か、ヘッダーのみを含んでいます",
			common.ErrEmptyFile)
	}
	return rows[0], rows[1:], nil
}

// skipBOM strips a UTF-8 byte order mark if present.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	peeked, err := br.Peek(3)
	if err == nil && bytes.Equal(peeked, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}
	return br
}
