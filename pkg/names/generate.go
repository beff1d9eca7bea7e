package names

import "strconv"

const (
	// EntryPointName names entry points from the configuration and the image.
	EntryPointName = "entry_point"
	// GeneratedImportPrefix prefixes the decimal ordinal of imports whose
	// name could not be resolved.
	GeneratedImportPrefix = "imported_function_ord_"
	// GeneratedFunctionPrefix prefixes the address of unnamed functions.
	GeneratedFunctionPrefix = "function_"
	// GeneratedFunctionPrefixIDA is GeneratedFunctionPrefix in IDA style.
	GeneratedFunctionPrefixIDA = "sub_"
	// GeneratedBasicBlockPrefix prefixes the address of basic blocks.
	GeneratedBasicBlockPrefix = "dec_label_pc_"
)

// GenerateImportName returns the name used for an import known only by
// ordinal.
func GenerateImportName(ord uint64) string {
	return GeneratedImportPrefix + strconv.FormatUint(ord, 10)
}

// GenerateFunctionName returns the name used for an unnamed function at a.
func GenerateFunctionName(a Address, ida bool) string {
	if ida {
		return GeneratedFunctionPrefixIDA + a.Hex()
	}
	return GeneratedFunctionPrefix + a.Hex()
}

// GenerateBasicBlockName returns the label of the basic block at a.
func GenerateBasicBlockName(a Address) string {
	return GeneratedBasicBlockPrefix + a.Hex()
}
