package themefile

import "sort"

// detectCycle returns the features participating in a redirect cycle, or nil
// if no cycle exists. Each feature has at most one redirect, so the graph is
// a set of chains that either reach a base link or loop.
func detectCycle(features []Feature) []string {
	graph := make(map[string]string, len(features))
	for _, f := range features {
		if f.Redirect != "" {
			graph[f.Name] = f.Redirect
		}
	}

	visiting := make(map[string]bool, len(graph))
	visited := make(map[string]bool, len(graph))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		if next, ok := graph[node]; ok && !visited[next] {
			if visiting[next] {
				if idx := indexOf(stack, next); idx >= 0 {
					cycle = append([]string{}, stack[idx:]...)
					cycle = append(cycle, next)
				}
				return true
			}
			if dfs(next) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
