package geo

// InternalAngle maps the interior angle between edge vectors a and b,
// measured around orientation norm, onto the half-open interval (0, 4] so
// that the smallest left-turning continuation can be found by numeric
// minimum without computing an inverse cosine (spec §4.2).
//
// a and b need not be unit; they are normalized here. If (a x b).norm > 0,
// b turns left of a (covers 0-180 degrees) and the result is 1 - a.b;
// otherwise it covers 180-360 degrees and the result is 3 + a.b. Parallel
// vectors compare as 360 degrees (the maximum, 4).
func InternalAngle(a, b, norm Vector) float64 {
	ua := a.Normalize()
	ub := b.Normalize()
	if ua.Cross(ub).Dot(norm) > 0 {
		return 1 - ua.Dot(ub)
	}
	return 3 + ua.Dot(ub)
}
