// Package all imports every package-manager backend.
//
// Import this package for its side effects to register all managers:
//
//	import (
//		"github.com/provkit/provision/internal/core"
//		_ "github.com/provkit/provision/internal/all"
//	)
package all

import (
	_ "github.com/provkit/provision/internal/apt"
	_ "github.com/provkit/provision/internal/cargo"
	_ "github.com/provkit/provision/internal/composer"
	_ "github.com/provkit/provision/internal/dotnet"
	_ "github.com/provkit/provision/internal/gem"
	_ "github.com/provkit/provision/internal/luarocks"
	_ "github.com/provkit/provision/internal/npm"
	_ "github.com/provkit/provision/internal/pip"
	_ "github.com/provkit/provision/internal/sdkman"
	_ "github.com/provkit/provision/internal/snap"
)
