package rng

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

var mtMag01 = [2]uint32{0, mtMatrixA}

// Twister is the 32-bit MT19937 Mersenne Twister. Seeding splits |seed| into
// little-endian 32-bit words and feeds them to init_by_array, and Float64
// builds 53-bit doubles from two outputs, the same way CPython's random
// module does for integer seeds.
//
// A Twister is not safe for concurrent use.
type Twister struct {
	mt  [mtN]uint32
	mti int
}

func NewMT19937(seed int64) *Twister {
	m := new(Twister)
	m.seedByArray(seedKey(seed))
	return m
}

// seedKey returns the init_by_array key for seed. A zero seed still yields a
// one-word key.
func seedKey(seed int64) []uint32 {
	u := uint64(seed)
	if seed < 0 {
		u = -u
	}
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	return key
}

func (m *Twister) seed(s uint32) {
	m.mt[0] = s
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.mti = mtN
}

func (m *Twister) seedByArray(key []uint32) {
	m.seed(19650218)

	i, j := 1, 0
	k := max(mtN, len(key))
	for ; k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
	}

	m.mt[0] = 0x80000000
}

func (m *Twister) twist() {
	var y uint32
	kk := 0
	for ; kk < mtN-mtM; kk++ {
		y = (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
		m.mt[kk] = m.mt[kk+mtM] ^ (y >> 1) ^ mtMag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
		m.mt[kk] = m.mt[kk+mtM-mtN] ^ (y >> 1) ^ mtMag01[y&1]
	}
	y = (m.mt[mtN-1] & mtUpperMask) | (m.mt[0] & mtLowerMask)
	m.mt[mtN-1] = m.mt[mtM-1] ^ (y >> 1) ^ mtMag01[y&1]
	m.mti = 0
}

// Uint32 returns the next tempered 32-bit output.
func (m *Twister) Uint32() uint32 {
	if m.mti >= mtN {
		m.twist()
	}
	y := m.mt[m.mti]
	m.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 returns a uniform draw in [0, 1) with 53 bits of precision.
func (m *Twister) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
