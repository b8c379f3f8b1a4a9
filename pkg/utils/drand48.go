package utils

// drand48 线性同余参数（POSIX 规定）
const (
	drand48Multiplier = 0x5DEECE66D
	drand48Addend     = 0xB
	drand48Mask       = (1 << 48) - 1
	drand48SeedLow    = 0x330E
)

// RandomSource 均匀分布 [0,1) 随机数来源
type RandomSource interface {
	Float64() float64
}

// Drand48 48 位线性同余随机数生成器
//
// 与 POSIX srand48/drand48 逐位一致：相同种子产生与 C 版本完全相同的序列，
// 因此星空初始布局可以跨实现复现。
type Drand48 struct {
	state uint64
}

// NewDrand48 创建并播种生成器
//
// 与 srand48 相同，只使用 seed 的低 32 位。
func NewDrand48(seed int64) *Drand48 {
	r := &Drand48{}
	r.Seed(seed)
	return r
}

// Seed 重新播种
func (r *Drand48) Seed(seed int64) {
	r.state = (uint64(uint32(seed)) << 16) | drand48SeedLow
}

// Float64 返回 [0,1) 内的下一个均匀随机数
func (r *Drand48) Float64() float64 {
	r.state = (drand48Multiplier*r.state + drand48Addend) & drand48Mask
	return float64(r.state) / float64(uint64(1)<<48)
}

// Intn 返回 [0,n) 内的整数，等价于 (int)(drand48() * n)
func (r *Drand48) Intn(n int) int {
	return int(r.Float64() * float64(n))
}
