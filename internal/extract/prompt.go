package extract

// BuildOCRPrompt returns the instruction given to the vision model for the
// OCR stage.
func BuildOCRPrompt() string {
	return `You are an expert OCR system. Extract ALL text from this medical bill image.

Instructions:
1. Extract EVERY piece of text you see, maintaining the original layout
2. Include headers, line items, amounts, dates, and any other text
3. Preserve the structure and relationships between items
4. Pay special attention to:
   - Item names/descriptions
   - Quantities
   - Rates/unit prices
   - Amounts/totals
   - Any subtotals or grand totals
5. If there are tables, maintain the tabular structure

Return ONLY the extracted text, nothing else.`
}

// BuildLineItemPrompt returns the instruction given to the text model for
// the structuring stage, with the OCR text embedded.
func BuildLineItemPrompt(ocrText string) string {
	return `You are a medical bill data extraction expert. Extract line item details from this bill text.

BILL TEXT:
` + ocrText + `

CRITICAL INSTRUCTIONS:
1. ONLY extract MONETARY line items (products/services with amounts)
2. DO NOT extract dates, invoice numbers, or non-monetary fields as amounts
3. Each line item MUST have:
   - item_name: The product/service description (string) - EXACTLY as in bill
   - item_amount: The NET amount AFTER discounts (float, currency value)
   - item_rate: The unit price (float, currency value)
   - item_quantity: The quantity purchased (float, can be 1 if not specified)

4. Determine page_type from content:
   - "Bill Detail": Detailed itemized charges
   - "Final Bill": Summary/total page
   - "Pharmacy": Pharmacy/medication items

5. VALIDATION RULES:
   - item_amount should equal item_rate x item_quantity (or close to it)
   - Only include items with valid currency amounts
   - Skip header rows, totals rows, and non-item entries
   - DO NOT include subtotals or grand totals as line items

6. COMMON MISTAKES TO AVOID:
   - DO NOT put invoice date/time in item_amount
   - DO NOT put invoice number in item_amount
   - DO NOT include tax rows as line items
   - DO NOT include "Total", "Subtotal", "Grand Total" as line items

Return ONLY valid JSON in this exact format:
{
    "page_no": "1",
    "page_type": "Bill Detail",
    "bill_items": [
        {
            "item_name": "Item description",
            "item_amount": 100.50,
            "item_rate": 50.25,
            "item_quantity": 2.0
        }
    ]
}

Return ONLY the JSON, no markdown backticks, no explanations.`
}
