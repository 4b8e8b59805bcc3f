package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-kit/log"
)

type currency struct {
	Name        string
	ID          string
	DisplayName string
	Precision   int
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if err := run(logger); err != nil {
		_ = logger.Log("msg", "generating currency data", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	src := filepath.Join("scripts", "currency", "currency_data.csv")
	data, err := readCsvFile(src)
	if err != nil {
		return fmt.Errorf("reading CSV file: %w", err)
	}

	currs, err := convertDataToCurrencies(data)
	if err != nil {
		return fmt.Errorf("converting CSV records: %w", err)
	}

	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		return fmt.Errorf("generating Go code: %w", err)
	}

	dst := "currency_data.go"
	if err := writeToFile(dst, code); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}
	_ = logger.Log("msg", "generated currency data", "src", src, "dst", dst, "currencies", len(currs))
	return nil
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	sort.Slice(data, func(i, j int) bool { return data[i][1] < data[j][1] })

	currs := make([]currency, 0, len(data))
	seen := make(map[string]bool, len(data))
	for _, rec := range data {
		id := rec[1]
		if id == "" || id != strings.ToUpper(id) {
			return nil, fmt.Errorf("currency %q: identifier must be non-empty and upper case", rec[0])
		}
		if seen[id] {
			return nil, fmt.Errorf("currency %q: duplicate identifier", id)
		}
		seen[id] = true
		prec, err := strconv.Atoi(rec[3])
		if err != nil || prec < 0 || prec > 18 {
			return nil, fmt.Errorf("currency %q: invalid precision %q", id, rec[3])
		}
		currs = append(currs, currency{
			Name:        rec[0],
			ID:          id,
			DisplayName: rec[2],
			Precision:   prec,
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
