package campaign

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// PhoneNumberColumn is the required header name. Case-sensitive.
const PhoneNumberColumn = "phone_number"

// ReadRequests loads call requests from a CSV file with a header row.
// The phone_number column is the destination; every other column becomes a
// template variable. It returns the detected headers so callers can log them.
//
// Zero data rows is not an error here; the caller decides whether an empty
// batch is acceptable.
func ReadRequests(path string) ([]CallRequest, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	return parseRequests(f)
}

func parseRequests(r io.Reader) ([]CallRequest, []string, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("input file has no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header row: %w", err)
	}

	// Spreadsheet exports commonly prefix the first cell with a UTF-8 BOM.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	phoneIdx := -1
	for i, name := range header {
		if name == PhoneNumberColumn {
			phoneIdx = i
			break
		}
	}
	if phoneIdx == -1 {
		return nil, header, fmt.Errorf("input file must contain a %q column", PhoneNumberColumn)
	}

	var requests []CallRequest
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, header, fmt.Errorf("reading row %d: %w", len(requests)+2, err)
		}

		req := CallRequest{PhoneNumber: record[phoneIdx]}
		if len(header) > 1 {
			req.Variables = make(map[string]string, len(header)-1)
			for i, name := range header {
				if i == phoneIdx {
					continue
				}
				req.Variables[name] = record[i]
			}
		}
		requests = append(requests, req)
	}

	return requests, header, nil
}
