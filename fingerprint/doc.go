// Package fingerprint derives stable content hashes for proteins and
// alignments, used as cache keys by viewcache and scanindex so a
// previously built cache can be reused for an unchanged input.
package fingerprint
