package pm

// NpmManager implements PackageManager for npm.
type NpmManager struct{}

func (n *NpmManager) Name() string { return "npm" }

func (n *NpmManager) InstallCommand() string { return "npm install" }

func (n *NpmManager) RunCommand(script string) string { return "npm run " + script }

// BunManager implements PackageManager for bun.
type BunManager struct{}

func (b *BunManager) Name() string { return "bun" }

func (b *BunManager) InstallCommand() string { return "bun install" }

func (b *BunManager) RunCommand(script string) string { return "bun run " + script }
