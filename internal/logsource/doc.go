// Package logsource collects raw kernel log lines from one of several
// providers: a log file, stdin, the dmesg command, or /dev/kmsg. All
// providers are batch reads; the caller receives the collected lines once
// and the source is closed.
package logsource
