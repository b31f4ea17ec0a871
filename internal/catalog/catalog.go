// Package catalog holds the curated registry of managed tools.
package catalog

import "github.com/provkit/provision/internal/core"

// Tools returns the full tool registry in install order. The slice is
// rebuilt per call so callers can filter it without affecting each other.
func Tools() []core.Tool {
	return []core.Tool{
		// Core utilities
		{Name: "git", Manager: "apt", Description: "Version control", Context: "Core"},
		{Name: "curl", Manager: "apt", Description: "URL transfer tool", Context: "Core"},
		{Name: "ripgrep", Manager: "apt", Description: "Fast search (rg)", Binary: "rg", Context: "Core"},
		{Name: "inotify-tools", Manager: "apt", Description: "Filesystem monitoring", Context: "Core"},
		{Name: "pass", Manager: "apt", Description: "Password manager", Context: "Core"},
		{Name: "wl-clipboard", Manager: "apt", Description: "Wayland clipboard", Context: "Core"},
		{Name: "powershell", Manager: "dotnet", Description: "PowerShell Core", Binary: "pwsh", Context: "Core"},

		// Python environment
		{Name: "python3-venv", Manager: "apt", Description: "Virtual environments", Context: "Python"},
		{Name: "rich", Manager: "pip", Description: "Terminal formatting", Context: "Python"},
		{Name: "requests", Manager: "pip", Description: "HTTP library", Context: "Python"},
		{Name: "pynvim", Manager: "pip", Description: "Neovim Python client", Context: "Python"},

		// Editor
		{Name: "neovim", Manager: "apt", Description: "Text editor", Binary: "nvim", Context: "Editor"},
		{Name: "tree-sitter-cli", Manager: "cargo", Description: "Parser generator", Context: "Editor"},
		{Name: "glow", Manager: "apt", Description: "Markdown renderer", Context: "Editor"},

		// Languages and build tooling
		{Name: "build-essential", Manager: "apt", Description: "GCC/Make", Context: "Languages"},
		{Name: "cmake", Manager: "apt", Description: "Build system", Context: "Languages"},
		{Name: "nodejs", Manager: "apt", Description: "JS runtime", Context: "Languages"},
		{Name: "npm", Manager: "apt", Description: "JS package manager", Context: "Languages"},
		{Name: "luarocks", Manager: "apt", Description: "Lua package manager", Context: "Languages"},
		{Name: "laravel/installer", Manager: "composer", Description: "Laravel CLI", Binary: "laravel", Context: "Languages"},
		{Name: "dotnet-ef", Manager: "dotnet", Description: "Entity Framework Core CLI", Context: "Languages"},
		{Name: "java", Manager: "sdk", Description: "Java JDK", Context: "Languages"},
		{Name: "maven", Manager: "sdk", Description: "Maven build tool", Binary: "mvn", Context: "Languages"},
		{Name: "gradle", Manager: "sdk", Description: "Gradle build tool", Context: "Languages"},

		// Ruby tooling
		{Name: "colorls", Manager: "gem", Description: "ls with icons", Context: "Shell"},

		// Lua tooling
		{Name: "luacheck", Manager: "luarocks", Description: "Lua linter", Context: "Editor"},

		// Node CLIs
		{Name: "prettier", Manager: "npm", Description: "Code formatter", Context: "Editor"},

		// Desktop apps
		{Name: "typora", Manager: "snap", Description: "Markdown editor", Context: "Apps"},
		{Name: "docker", Manager: "snap", Description: "Container engine", Context: "Apps"},
		{Name: "tree", Manager: "snap", Description: "Directory visualizer", Context: "Apps"},
	}
}
