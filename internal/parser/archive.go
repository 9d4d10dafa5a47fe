package parser

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"
)

// ImportArchive extracts an .osz archive into its own folder under dir and
// returns that folder. Archives that were already imported are left alone.
func ImportArchive(archive, dir string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(archive), filepath.Ext(archive))
	target := filepath.Join(dir, stem)
	if _, err := os.Stat(target); nil == err {
		return target, nil
	}

	r, err := zip.OpenReader(archive)
	if nil != err {
		return "", fmt.Errorf("unable to open archive: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(target, 0o755); nil != err {
		return "", fmt.Errorf("unable to create beatmap directory: %w", err)
	}

	var total uint64
	for _, f := range r.File {
		n, err := extract(f, target)
		if nil != err {
			os.RemoveAll(target)
			return "", err
		}
		total += n
	}
	log.Printf("imported %v (%v files, %v)\n", stem, len(r.File), humanize.Bytes(total))
	return target, nil
}

func extract(f *zip.File, target string) (uint64, error) {
	root := filepath.Clean(target)
	p := filepath.Join(target, filepath.FromSlash(f.Name))
	if p == root && f.FileInfo().IsDir() {
		return 0, nil
	}
	if !strings.HasPrefix(p, root+string(os.PathSeparator)) {
		return 0, fmt.Errorf("archive entry %v escapes the beatmap directory", f.Name)
	}
	if f.FileInfo().IsDir() {
		return 0, os.MkdirAll(p, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); nil != err {
		return 0, fmt.Errorf("unable to create directory: %w", err)
	}

	rc, err := f.Open()
	if nil != err {
		return 0, fmt.Errorf("unable to open archive entry: %w", err)
	}
	defer rc.Close()

	out, err := os.Create(p)
	if nil != err {
		return 0, fmt.Errorf("unable to create file: %w", err)
	}
	defer out.Close()

	n, err := io.Copy(out, rc)
	if nil != err {
		return 0, fmt.Errorf("unable to extract %v: %w", f.Name, err)
	}
	return uint64(n), nil
}

// ImportArchives imports several archives concurrently. The returned slice
// holds the folder of every archive that imported, in input order; failed
// archives are logged and left empty.
func ImportArchives(archives []string, dir string) []string {
	folders := make([]string, len(archives))

	wg := sizedwaitgroup.New(runtime.NumCPU())
	for i, archive := range archives {
		wg.Add()
		go func(i int, archive string) {
			defer wg.Done()
			folder, err := ImportArchive(archive, dir)
			if nil != err {
				log.Println("unable to import", archive, err)
				return
			}
			folders[i] = folder
		}(i, archive)
	}
	wg.Wait()
	return folders
}
