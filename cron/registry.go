package cron

import (
	"sort"
	"strings"
	"sync"

	"stockfilter.GO/core/registry"
)

// Job is a registered cron job.
type Job struct {
	Name     string
	Schedule string
	Run      func(...string)
}

var mu sync.Mutex

// Register adds a job under its lowercased name. Call from init(); panics once the
// scheduler has read the registry or on a duplicate name.
func Register(name string, schedule string, run func(...string)) {
	name = strings.ToLower(name)
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	jobs := getJobs()
	if _, ok := jobs[name]; ok {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Name: name, Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job (for tests).
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := getJobs()
	delete(jobs, strings.ToLower(name))
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

func getJobs() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}

// Jobs returns a copy of all registered jobs and locks the registry.
func Jobs() map[string]Job {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Job)
	for k, v := range getJobs() {
		out[k] = v
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	return out
}

// Lookup finds a job by case-insensitive name.
func Lookup(name string) (Job, bool) {
	j, ok := Jobs()[strings.ToLower(name)]
	return j, ok
}

// Sorted returns the registered jobs ordered by name.
func Sorted() []Job {
	jobs := Jobs()
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}
