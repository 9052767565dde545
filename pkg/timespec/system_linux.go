//go:build linux

package timespec

import "golang.org/x/sys/unix"

// FileTimes implements System using stat(2).
func (OSSystem) FileTimes(path string) (Timespec, Timespec, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Timespec{}, Timespec{}, err
	}
	atime := Timespec{Sec: st.Atim.Sec, Nsec: st.Atim.Nsec}
	mtime := Timespec{Sec: st.Mtim.Sec, Nsec: st.Mtim.Nsec}
	return atime, mtime, nil
}
