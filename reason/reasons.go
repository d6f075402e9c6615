/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reason

// Reasons attached to statusmap errors. Grouped by the object that rejected
// the operation.
var (
	// RangeBounds: from > to.
	RangeBounds = MustParse("range.bounds")
	// RangeSyntax: a range literal could not be parsed.
	RangeSyntax = MustParse("range.syntax")

	// DescriptorRanges: no ranges left after deduplication.
	DescriptorRanges = MustParse("descriptor.ranges")
	// DescriptorFactory: nil deserializer factory, or a factory returning nil.
	DescriptorFactory = MustParse("descriptor.factory")
	// DescriptorPayloadType: empty payload type tag.
	DescriptorPayloadType = MustParse("descriptor.payload_type")

	// CollectionRangeConflict: a mutation would introduce conflicting ranges.
	CollectionRangeConflict = MustParse("collection.range_conflict")
	// CollectionIndex: index outside the collection.
	CollectionIndex = MustParse("collection.index")
	// CollectionFrozen: mutation after Freeze.
	CollectionFrozen = MustParse("collection.frozen")
	// CollectionNilDescriptor: nil descriptor passed to a mutation.
	CollectionNilDescriptor = MustParse("collection.nil_descriptor")

	// ResponseUnmatched: no descriptor matched the observed status code.
	ResponseUnmatched = MustParse("response.unmatched")
	// ResponseDecode: the selected deserializer failed.
	ResponseDecode = MustParse("response.decode")
	// ResponseTooLarge: the body exceeds the reader's size limit.
	ResponseTooLarge = MustParse("response.too_large")

	// CodecUnknown: no codec registered under the requested name.
	CodecUnknown = MustParse("codec.unknown")

	// ContractEndpoint: unknown or malformed endpoint in a contract file.
	ContractEndpoint = MustParse("contract.endpoint")
	// ContractType: a contract references a payload type with no registration.
	ContractType = MustParse("contract.type")
)
