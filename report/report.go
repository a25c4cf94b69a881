package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Report is the durable record of a restore run. It is the only thing the
// tool writes to the local filesystem; everything else lives in the
// management plane. Its main job is giving the operator the pre-restore disk
// names for manual cleanup.
type Report struct {
	RunID             string       `yaml:"run_id"`
	VMName            string       `yaml:"vm"`
	ResourceGroup     string       `yaml:"resource_group"`
	Collection        string       `yaml:"restore_point_collection"`
	RestorePoint      string       `yaml:"restore_point"`
	FinishedAt        time.Time    `yaml:"finished_at"`
	FailedStep        string       `yaml:"failed_step,omitempty"`
	KeepOriginalDisks bool         `yaml:"keep_original_disks"`
	CreatedDisks      []DiskRecord `yaml:"created_disks"`
	PreRestoreDisks   []DiskRecord `yaml:"pre_restore_disks"`
}

type DiskRecord struct {
	Name    string `yaml:"name"`
	SKU     string `yaml:"sku,omitempty"`
	LUN     *int32 `yaml:"lun,omitempty"`
	Caching string `yaml:"caching,omitempty"`
	OSDisk  bool   `yaml:"os_disk,omitempty"`
}

type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) FileWriter {
	return FileWriter{dir: dir}
}

// Write serializes the report to <vm>-restore-<timestamp>.yml in the
// writer's directory and returns the path.
func (w FileWriter) Write(r Report) (string, error) {
	payload, err := yaml.Marshal(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize restore report")
	}

	name := fmt.Sprintf("%s-restore-%s.yml", r.VMName, r.FinishedAt.UTC().Format("20060102T150405Z"))
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", errors.Wrap(err, "failed to write restore report")
	}
	return path, nil
}
