// Package installer installs, upgrades and uninstalls the database part of a
// module.
//
// A module keeps its SQL scripts under
// <installRoot>/Database/<databaseType>/: install.sql, uninstall.sql and
// one <major>.<minor>.<patch>.sql script per schema version. A
// [FileSystemInstaller] runs those scripts; a module may register any number
// of custom [Installer] implementations next to it. [ModuleInstaller] reads
// the version recorded in the database, combines the file-system installer
// with the custom ones in a [Composite] and guards every action with the
// matching capability check.
//
// Nothing in this package is safe for concurrent use: callers serialize
// sessions against the same install root and module record.
package installer
