package cli

// Message constants
const (
	MsgRootShort = "Replace duplicate files with symlinks"
	MsgRootLong  = `duplink scans a directory tree for files with identical content and
replaces the redundant copies with relative symbolic links to a single
retained original, reclaiming the space the copies held.

Use 'duplink help topics' to list the available help topics.`

	MsgLinkShort   = "Deduplicate a directory tree"
	MsgLinkLong    = "Scan ROOT for files whose content is byte-identical and replace every\nredundant copy with a relative symlink to the first-discovered original.\n\nWith --dry-run, print one '<copy> -> <target>' line per redundant copy\nand change nothing."
	MsgLinkExample = `  # Deduplicate photos, previewing first
  duplink link ~/photos --dry-run
  duplink link ~/photos

  # Only consider jpeg and png files over 1 MiB
  duplink link ~/photos -p '*.jpg' -p '*.png' --min-size '1 MiB'`

	MsgScanShort   = "Report duplicate files without changing anything"
	MsgScanLong    = "Scan ROOT and print its duplicate groups: each group's digest, size,\nthe original that would be kept, and the copies that would become\nlinks. The filesystem is never modified."
	MsgScanExample = `  # Styled report in a terminal
  duplink scan ~/photos

  # Machine-readable output
  duplink scan ~/photos --format json`

	MsgGenConfigShort   = "Generate a configuration file"
	MsgGenConfigLong    = "Output the default configuration with every value commented out, or\nwrite it to ./.duplink.toml with -w. With --effective, print the\nconfiguration resolved from all layers instead."
	MsgGenConfigExample = `  duplink genconfig             # Print commented defaults
  duplink genconfig -w          # Write ./.duplink.toml
  duplink genconfig --effective # Print resolved configuration`
)
