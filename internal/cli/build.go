package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".ddstool.yaml"

// buildJob is one conversion job from the config file. Jobs whose output
// is a .dds rewrite the container; other extensions export the base
// surface.
type buildJob struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Mode   string `yaml:"mode" default:"prefer-legacy"`
}

// CmdBuild runs conversion jobs from a yaml config file.
type CmdBuild struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Path to config file or directory (default: ./.ddstool.yaml)"`
	} `positional-args:"yes"`

	Only []string `short:"j" long:"job" description:"Run only selected job names (repeatable)"`
}

// Execute runs the build command.
func (c *CmdBuild) Execute(args []string) error {
	configPath, err := resolveConfigPath(c.Args.Path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	jobs, err := parseBuildJobs(data)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no jobs found in %q", configPath)
	}

	baseDir := filepath.Dir(configPath)
	selected, err := filterJobs(jobs, c.Only, baseDir)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no jobs selected")
	}

	for _, job := range selected {
		if err := runJob(&job); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
	}

	return nil
}

func runJob(job *buildJob) error {
	if strings.TrimSpace(job.Input) == "" || strings.TrimSpace(job.Output) == "" {
		return fmt.Errorf("input and output are required")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(job.Output), "."))
	if ext == "dds" {
		return convertFile(job.Input, job.Output, job.Mode)
	}

	export := CmdExport{}
	export.Args.Input = job.Input
	export.Args.Output = job.Output
	return export.Execute(nil)
}

// resolveConfigPath resolves the path to the config file.
func resolveConfigPath(arg string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get cwd: %w", err)
		}
		path := filepath.Join(cwd, defaultConfigName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config not found: %s", path)
		}

		return path, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}

	if info.IsDir() {
		path := filepath.Join(arg, defaultConfigName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config not found: %s", path)
		}
		return path, nil
	}

	return arg, nil
}

// parseBuildJobs parses the job list from the config file, accepting
// either a top-level "jobs" key or a bare list.
func parseBuildJobs(data []byte) ([]buildJob, error) {
	var doc struct {
		Jobs []buildJob `yaml:"jobs"`
	}
	docErr := yaml.Unmarshal(data, &doc)
	if docErr == nil && len(doc.Jobs) > 0 {
		return doc.Jobs, nil
	}

	var list []buildJob
	if err := yaml.Unmarshal(data, &list); err != nil {
		if docErr != nil {
			return nil, docErr
		}
		return nil, err
	}

	return list, nil
}

// filterJobs applies defaults, resolves paths, and keeps only the
// selected job names.
func filterJobs(jobs []buildJob, only []string, baseDir string) ([]buildJob, error) {
	for i := range jobs {
		if err := defaults.Set(&jobs[i]); err != nil {
			return nil, fmt.Errorf("apply defaults: %w", err)
		}
		jobs[i].Input = resolveRelativePath(baseDir, jobs[i].Input)
		jobs[i].Output = resolveRelativePath(baseDir, jobs[i].Output)
		if strings.TrimSpace(jobs[i].Name) == "" {
			jobs[i].Name = filepath.Base(jobs[i].Input)
		}
	}
	if len(only) == 0 {
		return jobs, nil
	}

	onlySet := make(map[string]struct{}, len(only))
	for _, name := range only {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		onlySet[name] = struct{}{}
	}
	if len(onlySet) == 0 {
		return nil, fmt.Errorf("no valid --job values")
	}

	out := make([]buildJob, 0, len(jobs))
	for _, job := range jobs {
		if _, ok := onlySet[job.Name]; ok {
			out = append(out, job)
		}
	}

	return out, nil
}

// resolveRelativePath resolves a config-relative path.
func resolveRelativePath(baseDir, path string) string {
	if strings.TrimSpace(path) == "" {
		return path
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(baseDir, path)
}
