package prototype

// Reference values for the Bessel tests, orders 1-10: roots of the reverse
// Bessel polynomials, Newton-polished in 60-digit arithmetic and rounded to
// 16 decimals.

// besselDelayPoles holds one pole per conjugate pair (positive imaginary
// part) and the real pole last for odd orders.
var besselDelayPoles = [11][]complex128{
	// order 0: unused
	{},
	// order 1
	{
		complex(-1.0000000000000000, 0),
	},
	// order 2
	{
		complex(-1.5000000000000000, 0.8660254037844386),
	},
	// order 3
	{
		complex(-1.8389073226869572, 1.7543809597837217),
		complex(-2.3221853546260856, 0),
	},
	// order 4
	{
		complex(-2.1037893971796278, 2.6574180418567526),
		complex(-2.8962106028203722, 0.8672341289345038),
	},
	// order 5
	{
		complex(-2.3246743031816450, 3.5710229203379762),
		complex(-3.3519563991535333, 1.7426614161831977),
		complex(-3.6467385953296434, 0),
	},
	// order 6
	{
		complex(-2.5159322478108215, 4.4926729536539423),
		complex(-3.7357083563258149, 2.6262723114471256),
		complex(-4.2483593958633641, 0.8675096732313656),
	},
	// order 7
	{
		complex(-2.6856768789432657, 5.4206941307167487),
		complex(-4.0701391636381379, 3.5171740477097533),
		complex(-4.7582905281546291, 1.7392860611305365),
		complex(-4.9717868585279357, 0),
	},
	// order 8
	{
		complex(-2.8389839488976305, 6.3539112986048769),
		complex(-4.3682892172024026, 4.4144425004715391),
		complex(-5.2048407906368821, 2.6161751526425276),
		complex(-5.5878860432630848, 0.8676144453527864),
	},
	// order 9
	{
		complex(-2.9792607981800714, 7.2914636883421817),
		complex(-4.6384398871803905, 5.3172716754356513),
		complex(-5.6044218195077811, 3.4981569178860936),
		complex(-6.1293679042742726, 1.7378483834808625),
		complex(-6.2970191817149681, 0),
	},
	// order 10
	{
		complex(-3.1089162336490981, 8.2326994590735882),
		complex(-4.8862195668589994, 6.2249854824715669),
		complex(-5.9675283285877860, 4.3849471889419318),
		complex(-6.6152909654768699, 2.6115679208000899),
		complex(-6.9220449054272457, 0.8676651954512214),
	},
}

// besselScaleFactors are the -3 dB frequencies of the delay-normalized
// filters.
var besselScaleFactors = [11]float64{
	0, // order 0: unused
	1.0,
	1.36165412871613,
	1.75567236868121,
	2.11391767490422,
	2.42741070215263,
	2.70339506120292,
	2.95172214703872,
	3.17961723751065,
	3.39169313891166,
	3.59098059456916,
}
