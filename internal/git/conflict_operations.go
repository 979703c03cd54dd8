package git

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ConflictedFiles returns the paths git reports as unmerged: both
// modified (UU) or both added (AA) in porcelain status output.
func (repo *GitRepo) ConflictedFiles() ([]string, error) {
	output, err := repo.runner.Run(repo.WorkDir, "git", "status", "--porcelain")
	if err != nil {
		return nil, commandError("status", err, output)
	}

	var files []string
	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}

		code := line[:2]
		if code != "UU" && code != "AA" {
			continue
		}

		path := strings.TrimSpace(line[3:])
		// Git quotes filenames with special characters - remove the quotes
		if strings.HasPrefix(path, "\"") && strings.HasSuffix(path, "\"") {
			path = path[1 : len(path)-1]
		}
		files = append(files, path)
	}

	return files, nil
}

// MergeInProgress reports whether a merge has been started and not yet
// concluded.
func (repo *GitRepo) MergeInProgress() bool {
	_, err := os.Stat(filepath.Join(repo.WorkDir, ".git", "MERGE_HEAD"))
	return err == nil
}
