package pm

// PnpmManager implements PackageManager for pnpm.
type PnpmManager struct{}

func (p *PnpmManager) Name() string { return "pnpm" }

func (p *PnpmManager) InstallCommand() string { return "pnpm install" }

// RunCommand uses the "run" form; pnpm's shorthand collides with its own commands.
func (p *PnpmManager) RunCommand(script string) string { return "pnpm run " + script }

// YarnManager implements PackageManager for yarn.
type YarnManager struct{}

func (y *YarnManager) Name() string { return "yarn" }

// InstallCommand is bare "yarn", which installs by default.
func (y *YarnManager) InstallCommand() string { return "yarn" }

func (y *YarnManager) RunCommand(script string) string { return "yarn " + script }
