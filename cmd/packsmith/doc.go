// Command packsmith edits, migrates, merges, and inspects Minecraft
// resource packs from the command line.
package main
