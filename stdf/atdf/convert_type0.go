package atdf

import "github.com/noonchen/go-stdf/stdf"

func farToFields(r stdf.FAR, cfg Config) []string {
	fields := []string{formatU8(r.CPUType), formatU8(r.StdfVer)}
	if cfg.Scale {
		fields = append(fields, "S")
	}
	return fields
}

func farFromFields(fields []string, cfg Config) (stdf.Record, error) {
	return stdf.FAR{
		CPUType: parseU8(fieldAt(fields, 0)),
		StdfVer: parseU8(fieldAt(fields, 1)),
	}, nil
}

func atrToFields(r stdf.ATR, cfg Config) []string {
	return []string{formatTime(r.ModTim), r.CmdLine}
}

func atrFromFields(fields []string, cfg Config) (stdf.Record, error) {
	return stdf.ATR{
		ModTim:  parseTime(fieldAt(fields, 0)),
		CmdLine: fieldAt(fields, 1),
	}, nil
}
