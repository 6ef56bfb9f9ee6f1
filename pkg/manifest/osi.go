// SPDX-License-Identifier: MPL-2.0

package manifest

// osiApproved is the set of SPDX license ids carrying the OSI-approved flag
// in the SPDX license list. spdxexp validates ids against the license list
// but does not expose the flag, so the set is tabulated here from the
// license list data. Deprecated ids are included where the list still marks
// them approved, since spdxexp may surface them.
var osiApproved = map[string]bool{
	"0BSD":                true,
	"AAL":                 true,
	"AFL-1.1":             true,
	"AFL-1.2":             true,
	"AFL-2.0":             true,
	"AFL-2.1":             true,
	"AFL-3.0":             true,
	"AGPL-3.0":            true,
	"AGPL-3.0-only":       true,
	"AGPL-3.0-or-later":   true,
	"APL-1.0":             true,
	"APSL-1.0":            true,
	"APSL-1.1":            true,
	"APSL-1.2":            true,
	"APSL-2.0":            true,
	"Apache-1.1":          true,
	"Apache-2.0":          true,
	"Artistic-1.0":        true,
	"Artistic-1.0-Perl":   true,
	"Artistic-1.0-cl8":    true,
	"Artistic-2.0":        true,
	"BSD-1-Clause":        true,
	"BSD-2-Clause":        true,
	"BSD-2-Clause-Patent": true,
	"BSD-3-Clause":        true,
	"BSD-3-Clause-LBNL":   true,
	"BSL-1.0":             true,
	"CAL-1.0":             true,
	"CAL-1.0-Combined-Work-Exception": true,
	"CATOSL-1.1":       true,
	"CDDL-1.0":         true,
	"CECILL-2.1":       true,
	"CERN-OHL-P-2.0":   true,
	"CERN-OHL-S-2.0":   true,
	"CERN-OHL-W-2.0":   true,
	"CNRI-Python":      true,
	"CPAL-1.0":         true,
	"CPL-1.0":          true,
	"CUA-OPL-1.0":      true,
	"ECL-1.0":          true,
	"ECL-2.0":          true,
	"EFL-1.0":          true,
	"EFL-2.0":          true,
	"EPL-1.0":          true,
	"EPL-2.0":          true,
	"EUDatagrid":       true,
	"EUPL-1.1":         true,
	"EUPL-1.2":         true,
	"Entessa":          true,
	"Fair":             true,
	"Frameworx-1.0":    true,
	"GPL-2.0":          true,
	"GPL-2.0+":         true,
	"GPL-2.0-only":     true,
	"GPL-2.0-or-later": true,
	"GPL-3.0":          true,
	"GPL-3.0+":         true,
	"GPL-3.0-only":     true,
	"GPL-3.0-or-later": true,
	"HPND":             true,
	"ICU":              true,
	"IPA":              true,
	"IPL-1.0":          true,
	"ISC":              true,
	"Intel":            true,
	"Jam":              true,
	"LGPL-2.0":         true,
	"LGPL-2.0+":        true,
	"LGPL-2.0-only":    true,
	"LGPL-2.0-or-later": true,
	"LGPL-2.1":          true,
	"LGPL-2.1+":         true,
	"LGPL-2.1-only":     true,
	"LGPL-2.1-or-later": true,
	"LGPL-3.0":          true,
	"LGPL-3.0+":         true,
	"LGPL-3.0-only":     true,
	"LGPL-3.0-or-later": true,
	"LPL-1.0":           true,
	"LPL-1.02":          true,
	"LPPL-1.3c":         true,
	"LiLiQ-P-1.1":       true,
	"LiLiQ-R-1.1":       true,
	"LiLiQ-Rplus-1.1":   true,
	"MIT":               true,
	"MIT-0":             true,
	"MIT-Modern-Variant": true,
	"MPL-1.0":            true,
	"MPL-1.1":            true,
	"MPL-2.0":            true,
	"MPL-2.0-no-copyleft-exception": true,
	"MS-PL":          true,
	"MS-RL":          true,
	"MirOS":          true,
	"Motosoto":       true,
	"MulanPSL-2.0":   true,
	"Multics":        true,
	"NASA-1.3":       true,
	"NCSA":           true,
	"NGPL":           true,
	"NPOSL-3.0":      true,
	"NTP":            true,
	"Naumen":         true,
	"Nokia":          true,
	"OCLC-2.0":       true,
	"OFL-1.1":        true,
	"OFL-1.1-RFN":    true,
	"OFL-1.1-no-RFN": true,
	"OGTSL":          true,
	"OLDAP-2.8":      true,
	"OLFL-1.3":       true,
	"OSET-PL-2.1":    true,
	"OSL-1.0":        true,
	"OSL-2.0":        true,
	"OSL-2.1":        true,
	"OSL-3.0":        true,
	"PHP-3.0":        true,
	"PHP-3.01":       true,
	"PSF-2.0":        true,
	"PostgreSQL":     true,
	"Python-2.0":     true,
	"QPL-1.0":        true,
	"RPL-1.1":        true,
	"RPL-1.5":        true,
	"RPSL-1.0":       true,
	"RSCPL":          true,
	"SISSL":          true,
	"SPL-1.0":        true,
	"SimPL-2.0":      true,
	"Sleepycat":      true,
	"UCL-1.0":        true,
	"UPL-1.0":        true,
	"Unicode-3.0":    true,
	"Unicode-DFS-2016": true,
	"Unlicense":        true,
	"VSL-1.0":          true,
	"W3C":              true,
	"W3C-20150513":     true,
	"Watcom-1.0":       true,
	"Xnet":             true,
	"ZPL-2.0":          true,
	"ZPL-2.1":          true,
	"Zlib":             true,
	"wxWindows":        true,
}
